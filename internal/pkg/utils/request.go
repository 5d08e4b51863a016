package utils

import (
	"net/http"
	"sefasevim-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseRequestBody decodes the JSON body into dst and validates it with the
// shared validator. dst must be a pointer to a struct carrying validate tags.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
