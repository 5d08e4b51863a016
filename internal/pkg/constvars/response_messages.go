package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	// Booking messages
	GetAvailabilitySuccessMessage    = "get availability successfully"
	CreateAppointmentSuccessMessage  = "appointment request created successfully"
	GetAppointmentsSuccessMessage    = "get appointments successfully"
	UpdateAppointmentSuccessMessage  = "appointment status updated successfully"
	CreateMessageSuccessMessage      = "message sent successfully"
	GetMessagesSuccessMessage        = "get messages successfully"
	UpdateMessageReadSuccessMessage  = "message marked as read successfully"
	DeleteMessageSuccessMessage      = "message deleted successfully"
	GetDashboardCountsSuccessMessage = "get dashboard counts successfully"

	// Site content messages
	GetContentSuccessMessage      = "get content successfully"
	UpdateContentSuccessMessage   = "content updated successfully"
	GetFaqsSuccessMessage         = "get faqs successfully"
	UpdateFaqsSuccessMessage      = "faqs updated successfully"
	GetServicesSuccessMessage     = "get services successfully"
	GetServiceSuccessMessage      = "get service successfully"
	CreateServiceSuccessMessage   = "service created successfully"
	UpdateServiceSuccessMessage   = "service updated successfully"
	DeleteServiceSuccessMessage   = "service deleted successfully"
	GetWorkingHoursSuccessMessage = "get working hours successfully"
	SetWorkingHoursSuccessMessage = "working hours updated successfully"
	UploadMediaSuccessMessage     = "image uploaded successfully"
	GetMediaSuccessMessage        = "get images successfully"
	DeleteMediaSuccessMessage     = "image deleted successfully"
)
