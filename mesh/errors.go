package mesh

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIncompletePolygon  = errors.New("incomplete polygon found")
	ErrUnsupportedMapping = errors.New("unsupported mapping mode")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNegativeIndex      = errors.New("negative index")
)

// IndexOutOfRangeError is returned when a resolved attribute address is
// beyond the logical length of the attribute array.
type IndexOutOfRangeError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index out of range: index=%d, len=%d", e.What, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// NegativeIndexError is returned for a negative value in an index array.
type NegativeIndexError struct {
	What  string
	Slot  int
	Value int32
}

func (e *NegativeIndexError) Error() string {
	return fmt.Sprintf("negative %s index is not allowed: slot=%d, value=%d", e.What, e.Slot, e.Value)
}

func (e *NegativeIndexError) Unwrap() error { return ErrNegativeIndex }
