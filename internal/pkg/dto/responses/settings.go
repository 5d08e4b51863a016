package responses

type WorkingHoursRow struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type WorkingHours struct {
	Rows []WorkingHoursRow `json:"rows"`
}
