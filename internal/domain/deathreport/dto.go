package deathreport

// Dates use YYYY-MM-DD strings, matching the stored column format.
type CreateDeathReportDto struct {
	Name            string `json:"name" validate:"required"`
	Surname         string `json:"surname" validate:"required"`
	Age             *int   `json:"age" validate:"required"`
	DateOfDeath     string `json:"date_of_death" validate:"required"`
	PlaceOfDeath    string `json:"place_of_death,omitempty"`
	FuneralLocation string `json:"funeral_location,omitempty"`
	FuneralDate     string `json:"funeral_date,omitempty"`
	PhotoURL        string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type UpdateDeathReportDto struct {
	Name            *string `json:"name,omitempty"`
	Surname         *string `json:"surname,omitempty"`
	Age             *int    `json:"age,omitempty"`
	DateOfDeath     *string `json:"date_of_death,omitempty"`
	PlaceOfDeath    *string `json:"place_of_death,omitempty"`
	FuneralLocation *string `json:"funeral_location,omitempty"`
	FuneralDate     *string `json:"funeral_date,omitempty"`
	PhotoURL        *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}
