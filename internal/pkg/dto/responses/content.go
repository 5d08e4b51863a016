package responses

type Content struct {
	Section string            `json:"section"`
	Fields  map[string]string `json:"fields"`
}

type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}
