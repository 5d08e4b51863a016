package constvars

type ContextKey string

const (
	ResourceAuth         = "auth"
	ResourceAvailability = "availability"
	ResourceAppointments = "appointments"
	ResourceMessages     = "messages"
	ResourceContent      = "content"
	ResourceFaqs         = "faqs"
	ResourceServices     = "services"
	ResourceSettings     = "settings"
	ResourceMedia        = "media"
	ResourceDashboard    = "dashboard"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SVM_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
