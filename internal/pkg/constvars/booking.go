package constvars

// Appointment lifecycle statuses as the admin panel drives them.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCompleted = "completed"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	SlotLabelFormat    = "%02d:00"
)
