package postsection

type CreatePostSectionDto struct {
	Name string `json:"name" validate:"required"`
}

type UpdatePostSectionDto struct {
	Name *string `json:"name,omitempty"`
}
