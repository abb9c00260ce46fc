package editor

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-intake/pkg/validation"
)

// ErrIndexOutOfRange signals a section or field index that does not exist.
// Mutations abort before touching the form when they detect one.
var ErrIndexOutOfRange = errors.New("editor: index out of range")

// ValidationError carries the keyed messages that blocked a save.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("editor: form failed validation (%d problems)", len(e.Result))
}

func sectionRangeErr(index, length int) error {
	return fmt.Errorf("%w: section %d of %d", ErrIndexOutOfRange, index, length)
}

func fieldRangeErr(index, length int) error {
	return fmt.Errorf("%w: field %d of %d", ErrIndexOutOfRange, index, length)
}
