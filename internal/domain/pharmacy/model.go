// Package pharmacy implements the pharmacy resource context.
package pharmacy

type Pharmacy struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func (p Pharmacy) EntityID() int { return p.ID }
