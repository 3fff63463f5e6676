package field

import (
	"errors"
	"fmt"
)

// Sentinel errors for field configuration.
var (
	ErrMissingFieldName       = errors.New("field: missing field name")
	ErrMissingAncestorContext = errors.New("field: missing ancestor form context")
	ErrInvalidConfig          = errors.New("field: invalid configuration")
)

// MissingFieldNameError reports the component that could not derive a name.
type MissingFieldNameError struct {
	Component string
	Mode      NameMode
}

func (e *MissingFieldNameError) Error() string {
	if e.Mode == NameInferred {
		return fmt.Sprintf("field: %s requires a name or a binding expression to infer it from", e.Component)
	}
	return fmt.Sprintf("field: %s requires a name", e.Component)
}

// Is lets errors.Is match ErrMissingFieldName.
func (e *MissingFieldNameError) Is(target error) bool {
	return target == ErrMissingFieldName
}

// IsMissingFieldName reports whether err is a missing-name configuration error.
func IsMissingFieldName(err error) bool {
	return errors.Is(err, ErrMissingFieldName)
}

// IsMissingAncestorContext reports whether err signals a field without any
// error source.
func IsMissingAncestorContext(err error) bool {
	return errors.Is(err, ErrMissingAncestorContext)
}
