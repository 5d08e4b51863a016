package models

import "time"

// WorkingHoursRow stores one schedule row in display form, e.g.
// {Day: "Pazartesi - Cuma", Hours: "09:00 - 19:00"} or {Day: "Pazar",
// Hours: "Kapalı"}. The display strings are the source of truth; the
// availability package compiles them before resolving bookable slots.
type WorkingHoursRow struct {
	Day   string `bson:"day" json:"day"`
	Hours string `bson:"hours" json:"hours"`
}

type WorkingHoursDocument struct {
	ID        string            `bson:"_id"`
	Rows      []WorkingHoursRow `bson:"rows"`
	UpdatedAt time.Time         `bson:"updated_at,omitempty"`
}
