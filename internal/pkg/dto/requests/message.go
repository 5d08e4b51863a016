package requests

type CreateMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone_number"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}
