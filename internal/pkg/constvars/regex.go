package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexSlotLabel                    = `^\d{2}:00$`
	RegexTurkeyPhoneNumber            = `^(?:\+90|90|0)?5\d{9}$`
)
