package tree

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/utils"
)

// AttributeType is a type tag of a node attribute value.
type AttributeType int

const (
	TypeBool AttributeType = iota
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
	TypeArrBool
	TypeArrI32
	TypeArrI64
	TypeArrF32
	TypeArrF64
	TypeBinary
	TypeString
)

var attributeTypeNames = [...]string{
	TypeBool:    "bool",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeF32:     "f32",
	TypeF64:     "f64",
	TypeArrBool: "[bool]",
	TypeArrI32:  "[i32]",
	TypeArrI64:  "[i64]",
	TypeArrF32:  "[f32]",
	TypeArrF64:  "[f64]",
	TypeBinary:  "binary",
	TypeString:  "string",
}

func (t AttributeType) String() string {
	if t >= 0 && int(t) < len(attributeTypeNames) {
		return attributeTypeNames[t]
	}
	return fmt.Sprintf("AttributeType(%d)", int(t))
}

// TypeMismatchError is returned by attribute accessors when the stored
// value has another type than requested.
type TypeMismatchError struct {
	Expected string
	Actual   AttributeType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s but got %v", e.Expected, e.Actual)
}

// Attribute is a single typed node attribute value.
type Attribute struct {
	typ   AttributeType
	value interface{}
}

func (a Attribute) Type() AttributeType { return a.typ }

// Value returns the raw stored Go value.
func (a Attribute) Value() interface{} { return a.value }

func (a Attribute) mismatch(expected string) error {
	return &TypeMismatchError{Expected: expected, Actual: a.typ}
}

func (a Attribute) AsBool() (bool, error) {
	if v, ok := a.value.(bool); ok && a.typ == TypeBool {
		return v, nil
	}
	return false, a.mismatch("bool")
}

func (a Attribute) AsI16() (int16, error) {
	if v, ok := a.value.(int16); ok {
		return v, nil
	}
	return 0, a.mismatch("i16")
}

func (a Attribute) AsI32() (int32, error) {
	if v, ok := a.value.(int32); ok {
		return v, nil
	}
	return 0, a.mismatch("i32")
}

func (a Attribute) AsI64() (int64, error) {
	if v, ok := a.value.(int64); ok {
		return v, nil
	}
	return 0, a.mismatch("i64")
}

func (a Attribute) AsF32() (float32, error) {
	if v, ok := a.value.(float32); ok {
		return v, nil
	}
	return 0, a.mismatch("f32")
}

func (a Attribute) AsF64() (float64, error) {
	if v, ok := a.value.(float64); ok {
		return v, nil
	}
	return 0, a.mismatch("f64")
}

func (a Attribute) AsString() (string, error) {
	if a.typ == TypeString {
		return a.value.(string), nil
	}
	return "", a.mismatch("string")
}

func (a Attribute) AsBinary() ([]byte, error) {
	if a.typ == TypeBinary {
		return a.value.([]byte), nil
	}
	return nil, a.mismatch("binary")
}

func (a Attribute) AsArrBool() ([]bool, error) {
	if v, ok := a.value.([]bool); ok {
		return v, nil
	}
	return nil, a.mismatch("[bool]")
}

func (a Attribute) AsArrI32() ([]int32, error) {
	if v, ok := a.value.([]int32); ok {
		return v, nil
	}
	return nil, a.mismatch("[i32]")
}

func (a Attribute) AsArrI64() ([]int64, error) {
	if v, ok := a.value.([]int64); ok {
		return v, nil
	}
	return nil, a.mismatch("[i64]")
}

func (a Attribute) AsArrF32() ([]float32, error) {
	if v, ok := a.value.([]float32); ok {
		return v, nil
	}
	return nil, a.mismatch("[f32]")
}

func (a Attribute) AsArrF64() ([]float64, error) {
	if v, ok := a.value.([]float64); ok {
		return v, nil
	}
	return nil, a.mismatch("[f64]")
}

// ToInt64 accepts any integer or boolean attribute.
func (a Attribute) ToInt64() (int64, error) {
	switch v := a.value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, a.mismatch("integer")
}

// ToFloat64 accepts any numeric attribute.
func (a Attribute) ToFloat64() (float64, error) {
	switch v := a.value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, a.mismatch("number")
}

// ToArrF64 accepts [f32] and [f64] arrays.
func (a Attribute) ToArrF64() ([]float64, error) {
	switch v := a.value.(type) {
	case []float64:
		return v, nil
	case []float32:
		return utils.FloatArray32to64(v), nil
	}
	return nil, a.mismatch("[f32] or [f64]")
}

func (a Attribute) String() string {
	switch v := a.value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("binary(%d)", len(v))
	case []bool, []int32, []int64, []float32, []float64:
		return fmt.Sprintf("%v(%d)", a.typ, arrayLen(v))
	}
	return fmt.Sprintf("%v", a.value)
}

func arrayLen(v interface{}) int {
	switch v := v.(type) {
	case []bool:
		return len(v)
	case []int32:
		return len(v)
	case []int64:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	}
	return 0
}

// TypesOf renders attribute types as a tuple, e.g. "(i64, string, string)".
func TypesOf(attrs []Attribute) string {
	s := "("
	for i, a := range attrs {
		if i != 0 {
			s += ", "
		}
		s += a.typ.String()
	}
	return s + ")"
}

// NewAttribute converts a Go value into an attribute.
func NewAttribute(v interface{}) (Attribute, error) {
	switch v := v.(type) {
	case bool:
		return Attribute{TypeBool, v}, nil
	case int8:
		return Attribute{TypeI16, int16(v)}, nil
	case uint8:
		return Attribute{TypeI16, int16(v)}, nil
	case int16:
		return Attribute{TypeI16, v}, nil
	case uint16:
		return Attribute{TypeI32, int32(v)}, nil
	case int32:
		return Attribute{TypeI32, v}, nil
	case uint32:
		return Attribute{TypeI64, int64(v)}, nil
	case int64:
		return Attribute{TypeI64, v}, nil
	case int:
		return Attribute{TypeI64, int64(v)}, nil
	case uint64:
		if v > math.MaxInt64 {
			return Attribute{}, errors.Errorf("integer attribute %d overflows i64", v)
		}
		return Attribute{TypeI64, int64(v)}, nil
	case float32:
		return Attribute{TypeF32, v}, nil
	case float64:
		return Attribute{TypeF64, v}, nil
	case string:
		return Attribute{TypeString, v}, nil
	case []byte:
		return Attribute{TypeBinary, v}, nil
	case []bool:
		return Attribute{TypeArrBool, v}, nil
	case []int32:
		return Attribute{TypeArrI32, v}, nil
	case []int64:
		return Attribute{TypeArrI64, v}, nil
	case []float32:
		return Attribute{TypeArrF32, v}, nil
	case []float64:
		return Attribute{TypeArrF64, v}, nil
	}
	return Attribute{}, errors.Errorf("unsupported attribute value: %s", utils.SDumpOneLine(v))
}
