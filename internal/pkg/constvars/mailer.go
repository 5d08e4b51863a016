package constvars

const (
	EmailNewAppointmentSubject = "[SEFA SEVIM] Yeni Randevu Talebi"
	EmailNewMessageSubject     = "[SEFA SEVIM] Yeni İletişim Mesajı"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailBodyNewAppointmentFormat    = "Yeni randevu talebi alındı.\n\nAd Soyad: %s\nE-posta: %s\nTelefon: %s\nRandevu: %s\nNot: %s\n"
	EmailBodyNewMessageFormat        = "Yeni iletişim mesajı alındı.\n\nAd Soyad: %s\nE-posta: %s\nTelefon: %s\n\n%s\n"
)
