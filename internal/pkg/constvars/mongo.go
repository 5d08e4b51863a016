package constvars

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionMessages     = "messages"
	MongoCollectionContent      = "content"
	MongoCollectionServices     = "services"
	MongoCollectionSettings     = "settings"
	MongoCollectionAdmins       = "admins"
)

// Fixed document IDs inside the settings and content collections.
const (
	SettingsDocumentWorkingHours = "working_hours"
	SettingsDocumentFaqs         = "faqs"

	ContentSectionHero          = "hero"
	ContentSectionAbout         = "about"
	ContentSectionOnlineTherapy = "online_therapy"
	ContentSectionContact       = "contact"
)
