package requests

type CreateAppointment struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone_number"`
	Date  string `json:"date" validate:"required,booking_date"`
	Time  string `json:"time" validate:"required,slot_label"`
	Notes string `json:"notes" validate:"max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed"`
}
