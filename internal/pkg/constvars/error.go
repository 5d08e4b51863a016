package constvars

// Validation messages for clients, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"password":     "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number": "must be a valid phone number",
	"booking_date": "must be a valid date in YYYY-MM-DD format",
	"slot_label":   "must be a valid hour slot in HH:00 format",
}

// Validation tags whose message carries the tag parameter
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientSlotNotAvailable              = "the selected time is not available for booking"
	ErrClientInvalidImageFormat            = "image must be a jpeg, png or webp file"
	ErrClientImageTooLarge                 = "image exceeds the maximum upload size"
)

// Error messages for developers
const (
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevAuthSigningMethod        = "unexpected jwt signing method"
	ErrDevAuthGenerateToken        = "failed to sign session token"
	ErrDevServerDeadlineExceeded   = "request deadline exceeded"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevInvalidDateParam         = "invalid date query parameter"
	ErrDevSlotNotOffered           = "requested slot is not offered for the date"
	ErrDevURLParamIDValidation     = "invalid url parameter: %s"

	ErrDevMongoDBInsertDocument  = "failed to insert document to MongoDB"
	ErrDevMongoDBFindDocument    = "failed to find document in MongoDB"
	ErrDevMongoDBUpdateDocument  = "failed to update document in MongoDB"
	ErrDevMongoDBDeleteDocument  = "failed to delete document in MongoDB"
	ErrDevMongoDBIterateDocument = "failed to iterate MongoDB cursor"
	ErrDevMongoDBNotObjectID     = "value is not a valid MongoDB ObjectID"
	ErrDevMongoDBCountDocuments  = "failed to count documents in MongoDB"

	ErrDevRedisSet    = "failed to set value to Redis"
	ErrDevRedisGet    = "failed to get value from Redis with key: %s"
	ErrDevRedisDelete = "failed to delete value from Redis"

	ErrDevMinioCreateObject = "failed to store object in bucket: %s"
	ErrDevMinioRemoveObject = "failed to remove object from bucket: %s"
	ErrDevMinioListObjects  = "failed to list objects in bucket: %s"

	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"
	ErrDevSMTPSendEmail   = "failed to send email via SMTP host: %s"
)
