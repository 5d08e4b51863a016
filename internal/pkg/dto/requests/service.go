package requests

type CreateService struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Icon        string `json:"icon" validate:"max=50"`
	Order       int    `json:"order" validate:"gte=0"`
}

type UpdateService struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Icon        string `json:"icon" validate:"max=50"`
	Order       int    `json:"order" validate:"gte=0"`
}
