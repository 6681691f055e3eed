package web

import (
	"encoding/json"
	"net/http"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/go-playground/validator/v10"
)

// validate holds the settings and caches for validating request struct
// values.
var validate = validator.New()

// Decode reads the body of an HTTP request looking for a JSON document. The
// body is decoded into the provided value, which is then checked against its
// go-playground/validator struct tags; a value that is not a struct is not
// checked.
func Decode(r *http.Request, val any) error {
	if err := json.NewDecoder(r.Body).Decode(val); err != nil {
		return err
	}

	if err := validate.Struct(val); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Param returns the web call parameters from the request.
func Param(r *http.Request, key string) string {
	m := httptreemux.ContextParams(r.Context())
	return m[key]
}
