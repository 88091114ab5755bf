/*
  errors.go
  Description: error kinds raised while parsing and rendering MTL templates
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:12:03 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import "fmt"

// ErrorKind classifies the errors a parse or a render can raise.
type ErrorKind int

const (
	// KindParse marks a malformed template. Fatal for the affected template.
	KindParse ErrorKind = iota

	// KindUnknownField marks a field name with no registered provider.
	KindUnknownField

	// KindProvider marks a provider that failed under a hard error policy.
	KindProvider

	// KindType marks a type mismatch (e.g. strftime on a non-datetime).
	// Rendering treats this as Null rather than aborting.
	KindType

	// KindFormat marks a format: coercion failure. The element is emitted
	// unchanged rather than aborting the render.
	KindFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindUnknownField:
		return "unknown field"
	case KindProvider:
		return "provider error"
	case KindType:
		return "type error"
	case KindFormat:
		return "format error"
	default:
		return "error"
	}
}

// Error is returned by Parse and Render. Offset is a rune offset into the
// source template that was being processed when the error was raised; Field,
// when non-empty, names the offending field.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mtl: %s at offset %d (field %q): %s", e.Kind, e.Offset, e.Field, e.Message)
	}
	return fmt.Sprintf("mtl: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func parseErrorf(offset int, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func unknownFieldError(name string, offset int) *Error {
	return &Error{Kind: KindUnknownField, Offset: offset, Field: name,
		Message: fmt.Sprintf("no provider is registered for field %q", name)}
}

func providerError(name string, offset int, cause error) *Error {
	return &Error{Kind: KindProvider, Offset: offset, Field: name,
		Message: fmt.Sprintf("provider failed: %v", cause)}
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
