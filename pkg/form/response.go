package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidPayload is returned when a validation response cannot be read.
var ErrInvalidPayload = errors.New("form: invalid validation payload")

// ValidationResponse is the body of a failed submission, in the
// {"message": "...", "errors": {"field": ["..."]}} shape.
type ValidationResponse struct {
	Message string
	Errors  map[string][]string
}

// ParseValidationResponse reads a JSON validation response. Each "errors"
// entry may hold a string or an array of strings; other values are rejected.
func ParseValidationResponse(body []byte) (ValidationResponse, error) {
	if !gjson.ValidBytes(body) {
		return ValidationResponse{}, fmt.Errorf("%w: malformed json", ErrInvalidPayload)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return ValidationResponse{}, fmt.Errorf("%w: expected an object", ErrInvalidPayload)
	}

	resp := ValidationResponse{
		Message: strings.TrimSpace(root.Get("message").String()),
	}

	errs := root.Get("errors")
	if !errs.Exists() || errs.Type == gjson.Null {
		return resp, nil
	}
	if !errs.IsObject() {
		return ValidationResponse{}, fmt.Errorf("%w: errors must be an object", ErrInvalidPayload)
	}

	resp.Errors = make(map[string][]string)
	var parseErr error
	errs.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		switch {
		case value.IsArray():
			for _, item := range value.Array() {
				if item.Type != gjson.String {
					parseErr = fmt.Errorf("%w: errors.%s must hold strings", ErrInvalidPayload, name)
					return false
				}
				resp.Errors[name] = append(resp.Errors[name], item.String())
			}
		case value.Type == gjson.String:
			resp.Errors[name] = append(resp.Errors[name], value.String())
		default:
			parseErr = fmt.Errorf("%w: errors.%s must be a string or array", ErrInvalidPayload, name)
			return false
		}
		return true
	})
	if parseErr != nil {
		return ValidationResponse{}, parseErr
	}
	return resp, nil
}

// Mapping maps the response onto fieldNames, adding the top-level message to
// the form-level errors when no field claimed a message.
func (r ValidationResponse) Mapping(fieldNames []string) ErrorMapping {
	mapping := MapErrorPayload(fieldNames, r.Errors)
	if r.Message != "" && len(mapping.Fields) == 0 {
		mapping.Form = MergeFormErrors(mapping.Form, r.Message)
	}
	return mapping
}
