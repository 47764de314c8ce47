// Package post implements the news-post resource context: CRUD plus the
// highlights feed, with the owning section name embedded on reads.
package post

import "time"

// SectionName is the embedded post_sections row returned by joined selects.
type SectionName struct {
	Name string `json:"name"`
}

type Post struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	SectionID      int          `json:"section_id"`
	Subtitle       string       `json:"subtitle,omitempty"`
	Summary        string       `json:"summary"`
	Body           string       `json:"body"`
	Tags           string       `json:"tags"`
	Image          string       `json:"image,omitempty"`
	Epigraph       string       `json:"epigraph,omitempty"`
	CreatedAt      *time.Time   `json:"created_at,omitempty"`
	LastModifiedAt *time.Time   `json:"last_modified_at,omitempty"`
	UserID         int          `json:"user_id"`
	Section        *SectionName `json:"post_sections,omitempty"`
}

func (p Post) EntityID() int { return p.ID }
