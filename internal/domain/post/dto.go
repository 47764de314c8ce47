package post

// CreatePostDto is the POST /posts body. Tags is a comma-separated list.
type CreatePostDto struct {
	Title     string `json:"title" validate:"required"`
	SectionID int    `json:"section_id" validate:"required"`
	Subtitle  string `json:"subtitle,omitempty"`
	Summary   string `json:"summary" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Tags      string `json:"tags" validate:"required"`
	Image     string `json:"image,omitempty"`
	Epigraph  string `json:"epigraph,omitempty"`
	UserID    int    `json:"user_id" validate:"required"`
}

// UpdatePostDto is the PUT /posts/:id body; every field is optional.
type UpdatePostDto struct {
	Title     *string `json:"title,omitempty"`
	SectionID *int    `json:"section_id,omitempty"`
	Subtitle  *string `json:"subtitle,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Body      *string `json:"body,omitempty"`
	Tags      *string `json:"tags,omitempty"`
	Image     *string `json:"image,omitempty"`
	Epigraph  *string `json:"epigraph,omitempty"`
	UserID    *int    `json:"user_id,omitempty"`
}
