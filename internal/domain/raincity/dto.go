package raincity

// CreateRainCityDto defaults is_active to true when the field is omitted.
type CreateRainCityDto struct {
	Name     string `json:"name" validate:"required"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateRainCityDto struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
