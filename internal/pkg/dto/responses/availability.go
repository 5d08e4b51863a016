package responses

// Availability is the booking form's answer for one selected date. Closed
// distinguishes "the practice is closed" from "open but no slots", which the
// caller renders as an empty picker instead of a closed notice.
type Availability struct {
	Date   string   `json:"date"`
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}
