package requests

// WorkingHoursRow carries one schedule row exactly as the admin panel edits
// it: a free-text day token and a free-text hours token. Parsing happens in
// the availability package, not here.
type WorkingHoursRow struct {
	Day   string `json:"day" validate:"required"`
	Hours string `json:"hours" validate:"required"`
}

type SetWorkingHours struct {
	Rows []WorkingHoursRow `json:"rows" validate:"required,min=1,dive"`
}
