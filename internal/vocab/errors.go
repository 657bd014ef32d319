package vocab

import (
	"errors"
	"fmt"
)

// ErrNoSymbol is returned when the root of a node's parent chain is not a
// symbol.
var ErrNoSymbol = errors.New("vocab: no symbol at tree root")

// ValidationError reports an invalid value assigned to a node property or
// an invalid structural edit. Setters validate eagerly; no partial
// assignment happens on failure.
type ValidationError struct {
	Property string
	Reason   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("vocab: invalid %s: %s", e.Property, e.Reason)
}

// AlignmentError reports that a field definition could not be aligned
// against the attached message set.
type AlignmentError struct {
	Field  string
	Reason string
	Err    error
}

func (e AlignmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vocab: align field %q: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("vocab: align field %q: %s", e.Field, e.Reason)
}

func (e AlignmentError) Unwrap() error { return e.Err }

// GenerationError reports that no valid content can be generated for a
// field under its current constraints.
type GenerationError struct {
	Field  string
	Reason string
	Err    error
}

func (e GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vocab: generate field %q: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("vocab: generate field %q: %s", e.Field, e.Reason)
}

func (e GenerationError) Unwrap() error { return e.Err }

// EncodingError reports a failing encoding stage. The remaining stages of
// the pipeline are not applied.
type EncodingError struct {
	Stage string
	Err   error
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("vocab: encoding stage %q: %v", e.Stage, e.Err)
}

func (e EncodingError) Unwrap() error { return e.Err }

// TransformationError reports a failing transformation stage.
type TransformationError struct {
	Stage string
	Err   error
}

func (e TransformationError) Error() string {
	return fmt.Sprintf("vocab: transformation stage %q: %v", e.Stage, e.Err)
}

func (e TransformationError) Unwrap() error { return e.Err }
