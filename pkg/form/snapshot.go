package form

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type wireSnapshot struct {
	Errors     map[string][]string `msgpack:"e,omitempty"`
	FormErrors []string            `msgpack:"f,omitempty"`
	Language   string              `msgpack:"l,omitempty"`
}

// EncodeSnapshot packs the context state into a URL-safe string that can ride
// a flash cookie across a post/redirect/get cycle.
func EncodeSnapshot(c *Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("form: encode snapshot: nil context")
	}
	s := c.load()
	packed, err := msgpack.Marshal(wireSnapshot{
		Errors:     s.errors,
		FormErrors: s.formErrors,
		Language:   s.language,
	})
	if err != nil {
		return "", fmt.Errorf("form: encode snapshot: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// DecodeSnapshot rebuilds a Context from EncodeSnapshot output. A stored
// language replaces one set through options; an empty one keeps it.
func DecodeSnapshot(raw string, options ...Option) (*Context, error) {
	packed, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot encoding: %v", ErrInvalidPayload, err)
	}

	var wire wireSnapshot
	if err := msgpack.Unmarshal(packed, &wire); err != nil {
		return nil, fmt.Errorf("%w: snapshot body: %v", ErrInvalidPayload, err)
	}

	c := NewContext(options...)
	c.PublishMapping(ErrorMapping{Fields: wire.Errors, Form: wire.FormErrors})
	if wire.Language != "" {
		c.SetLanguage(wire.Language)
	}
	return c, nil
}
