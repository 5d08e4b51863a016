package requests

type FaqItem struct {
	Question string `json:"question" validate:"required,min=5"`
	Answer   string `json:"answer" validate:"required,min=5"`
}

type UpdateFaqs struct {
	Faqs []FaqItem `json:"faqs" validate:"required,dive"`
}
