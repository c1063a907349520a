package estimator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownMaterial = fmt.Errorf("%w: unknown wall material", ErrInvalidInput)
	ErrUnknownFuel     = fmt.Errorf("%w: unknown fuel type", ErrInvalidInput)
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func invalidCatalog(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
