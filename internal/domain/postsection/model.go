// Package postsection implements the post-section resource context.
package postsection

type PostSection struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s PostSection) EntityID() int { return s.ID }
