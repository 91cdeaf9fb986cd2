package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPriceNotFound means a validated item had no price when the order was
// priced. It is an internal fault, not a client error.
var ErrPriceNotFound = errors.New("price not found")

// ErrTotalOutOfRange means the quantities or the total of an order cannot be
// represented. Validation bounds normally keep orders well below it.
var ErrTotalOutOfRange = errors.New("order total out of range")

// Violation is one failed constraint on one field.
type Violation struct {
	Field   string
	Value   any
	Message string
}

// String renders "<field path> <invalid value>: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s %v: %s", v.Field, v.Value, v.Message)
}

// ValidationError carries every violation found in a submitted order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "invalid order: " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.String()
	}
	return out
}
