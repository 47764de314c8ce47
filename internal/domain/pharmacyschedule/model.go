// Package pharmacyschedule implements the on-duty pharmacy schedule resource
// context, including the by-date lookup used by the public duty roster.
package pharmacyschedule

import "time"

type PharmacySchedule struct {
	ID         int       `json:"id"`
	PharmacyID int       `json:"pharmacy_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

func (s PharmacySchedule) EntityID() int { return s.ID }

// ScheduleForDate is the projection returned by the by-date lookup.
type ScheduleForDate struct {
	ID         int `json:"id"`
	PharmacyID int `json:"pharmacy_id"`
}
