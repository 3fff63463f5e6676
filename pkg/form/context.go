package form

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Errors maps a canonical field name to its ordered validation messages.
type Errors map[string][]string

// Has reports whether name has at least one message.
func (e Errors) Has(name string) bool {
	return len(e[name]) > 0
}

// Get returns the messages stored under name.
func (e Errors) Get(name string) []string {
	return e[name]
}

// First returns the first message for name, or "".
func (e Errors) First(name string) string {
	if msgs := e[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Keys returns the field names in sorted order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for key, msgs := range e {
		copied := make([]string, len(msgs))
		copy(copied, msgs)
		out[key] = copied
	}
	return out
}

type snapshot struct {
	errors     Errors
	formErrors []string
	language   string
}

// Context is the state a form publishes to its fields: the errors map and
// the form language. Every change swaps in a new snapshot, so readers never
// observe a half-updated map and always see the latest publish.
type Context struct {
	state  atomic.Pointer[snapshot]
	logger zerolog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithLogger logs publishes at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithLanguage sets the initial form language.
func WithLanguage(lang string) Option {
	return func(c *Context) {
		c.withLanguage(lang)
	}
}

// WithErrors sets the initial errors map.
func WithErrors(errs map[string][]string) Option {
	return func(c *Context) {
		cloned := Errors(errs).Clone()
		c.update(func(s *snapshot) *snapshot {
			return &snapshot{errors: cloned, formErrors: s.formErrors, language: s.language}
		})
	}
}

// NewContext builds a form context with no errors and no language.
func NewContext(options ...Option) *Context {
	c := &Context{logger: zerolog.Nop()}
	c.state.Store(&snapshot{})
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *Context) load() *snapshot {
	if s := c.state.Load(); s != nil {
		return s
	}
	return &snapshot{}
}

// update swaps in next(current), retrying when another writer got there
// first, so a language change never drops a concurrent publish or vice versa.
func (c *Context) update(next func(*snapshot) *snapshot) *snapshot {
	for {
		current := c.state.Load()
		base := current
		if base == nil {
			base = &snapshot{}
		}
		replacement := next(base)
		if c.state.CompareAndSwap(current, replacement) {
			return replacement
		}
	}
}

func (c *Context) withLanguage(lang string) {
	lang = strings.TrimSpace(lang)
	c.update(func(s *snapshot) *snapshot {
		return &snapshot{errors: s.errors, formErrors: s.formErrors, language: lang}
	})
}

// Publish replaces the errors map with a copy of errs. Form-level messages
// are cleared.
func (c *Context) Publish(errs map[string][]string) {
	c.PublishMapping(ErrorMapping{Fields: errs})
}

// PublishMapping replaces field and form-level errors at once.
func (c *Context) PublishMapping(mapping ErrorMapping) {
	errs := Errors(mapping.Fields).Clone()
	formErrors := append([]string(nil), mapping.Form...)
	next := c.update(func(s *snapshot) *snapshot {
		return &snapshot{errors: errs, formErrors: formErrors, language: s.language}
	})
	c.logger.Debug().
		Int("fields", len(next.errors)).
		Int("form_errors", len(next.formErrors)).
		Msg("form errors published")
}

// Reset clears all errors.
func (c *Context) Reset() {
	c.PublishMapping(ErrorMapping{})
}

// SetLanguage replaces the form language.
func (c *Context) SetLanguage(lang string) {
	c.withLanguage(lang)
	c.logger.Debug().Str("language", lang).Msg("form language changed")
}

// FieldErrors returns a copy of the messages stored under key.
func (c *Context) FieldErrors(key string) []string {
	msgs := c.load().errors[key]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Language returns the form language, or "".
func (c *Context) Language() string {
	return c.load().language
}

// Errors returns a copy of the current errors map.
func (c *Context) Errors() Errors {
	return c.load().errors.Clone()
}

// FormErrors returns the form-level messages.
func (c *Context) FormErrors() []string {
	return append([]string(nil), c.load().formErrors...)
}

// HasAnyErrors reports whether any field or form-level message is present.
func (c *Context) HasAnyErrors() bool {
	s := c.load()
	if len(s.formErrors) > 0 {
		return true
	}
	for _, msgs := range s.errors {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}
