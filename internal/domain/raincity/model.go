// Package raincity implements the rain-city resource context.
package raincity

type RainCity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func (r RainCity) EntityID() int { return r.ID }
