package responses

type Appointment struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AppointmentDate string `json:"appointment_date"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type CreateAppointment struct {
	AppointmentID   string `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
}
