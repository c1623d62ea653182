package hoststring

import "github.com/go-playground/validator/v10"

// Platform selects which host string convention an Options value applies
// to. It is the one piece of configuration this module has.
type Platform string

const (
	Posix   Platform = "posix"
	Windows Platform = "windows"
)

// Options configures an Encode/Decode call. Platform is validated with
// go-playground/validator/v10 before dispatch, leaning on struct tags
// rather than hand-written field checks.
type Options struct {
	Platform Platform `validate:"required,oneof=posix windows"`
}

var validate = validator.New()

// Validate runs struct-tag validation over o and returns the validator's
// error unchanged (a validator.ValidationErrors listing every failed
// field), so callers can use errors.As if they need field-level detail.
func (o Options) Validate() error {
	return validate.Struct(o)
}
