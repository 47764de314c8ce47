// Package deathreport implements the death-report resource context with a
// case-insensitive name search.
package deathreport

type DeathReport struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Age             int    `json:"age"`
	DateOfDeath     string `json:"date_of_death"`
	PlaceOfDeath    string `json:"place_of_death,omitempty"`
	FuneralLocation string `json:"funeral_location,omitempty"`
	FuneralDate     string `json:"funeral_date,omitempty"`
	PhotoURL        string `json:"photo_url,omitempty"`
}

func (d DeathReport) EntityID() int { return d.ID }
