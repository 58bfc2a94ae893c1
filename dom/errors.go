package dom

import (
	"errors"
	"fmt"
)

// ErrNoConstructor is flagged if no factory is registered for a tag, or the
// factory could not construct an element.
var ErrNoConstructor = errors.New("no constructor for tag")

// ErrInvalidContent is flagged by content policies refusing a child element.
var ErrInvalidContent = errors.New("invalid content")

// ErrInvalidAttribute is flagged by content policies refusing an attribute.
var ErrInvalidAttribute = errors.New("invalid attribute")

// ErrSealed is flagged when adding children to an element which does not
// accept further children, e.g., the root of a Page.
var ErrSealed = errors.New("element is sealed")

// ErrCycle is flagged when an element is appended to itself or to one of
// its descendants.
var ErrCycle = errors.New("element would become its own ancestor")

// FactoryError is returned when a registered factory fails to construct an
// element. It matches ErrNoConstructor and unwraps to the factory's cause,
// so that errors.Is finds policy refusals like ErrInvalidContent, too.
type FactoryError struct {
	Tag string
	Err error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("%v: <%s>: %v", ErrNoConstructor, e.Tag, e.Err)
}

// Is reports whether target is ErrNoConstructor.
func (e *FactoryError) Is(target error) bool {
	return target == ErrNoConstructor
}

// Unwrap returns the cause of the failure.
func (e *FactoryError) Unwrap() error {
	return e.Err
}
