package responses

type DashboardCounts struct {
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	UnreadMessages      int64 `json:"unread_messages"`
}
