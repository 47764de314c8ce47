package pharmacyschedule

import "time"

type CreatePharmacyScheduleDto struct {
	PharmacyID int       `json:"pharmacy_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

type UpdatePharmacyScheduleDto struct {
	PharmacyID *int       `json:"pharmacy_id,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}
