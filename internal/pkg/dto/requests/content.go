package requests

type UpdateContent struct {
	Fields map[string]string `json:"fields" validate:"required,min=1"`
}
