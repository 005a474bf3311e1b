// Package tserror holds the error kinds raised by timespan operations.
//
// Every error is a struct describing the failed argument, the field Err
// keeps the sentinel so callers can match the kind with errors.Is.
package tserror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrArgumentNull       = errors.New("argument is null")
	ErrArgumentOutOfRange = errors.New("argument out of range")
	ErrNotInteger         = errors.New("must be an integer")
	ErrOverflow           = errors.New("overflow")
)

// ErrorBase renders an error struct as "TypeName Field: `value`; ..." with
// the nested Err printed on its own line. A field may override its verb with
// a `format` tag.
func ErrorBase(errStruct interface{}) string {
	reflV := reflect.ValueOf(errStruct).Elem()
	reflT := reflV.Type()
	fmtO := []string{}
	param := []interface{}{}

	for i := 0; i < reflV.NumField(); i++ {
		fieldT := reflT.Field(i)
		fieldV := reflV.Field(i)

		form, ok := fieldT.Tag.Lookup("format")
		if !ok {
			form = "%s"
		}

		if fieldT.Name == "Err" {
			fmtO = append(fmtO, "\n\t"+form)
		} else {
			fmtO = append(fmtO, fieldT.Name+": `"+form+"`")
		}

		param = append(param, fieldV.Interface())
	}

	return fmt.Sprintf(reflT.Name()+" "+strings.Join(fmtO, "; "), param...)
}

// Required argument was not supplied
type ErrArgumentNullDecl struct {
	Name string
	Err  error
}

func (e *ErrArgumentNullDecl) Error() string {
	return ErrorBase(e)
}

func (e *ErrArgumentNullDecl) Unwrap() error {
	return e.Err
}

// Argument lies outside of [Min, Max]
type ErrArgumentOutOfRangeDecl struct {
	Name  string
	Value float64 `format:"%v"`
	Min   float64 `format:"%v"`
	Max   float64 `format:"%v"`
	Err   error
}

func (e *ErrArgumentOutOfRangeDecl) Error() string {
	return ErrorBase(e)
}

func (e *ErrArgumentOutOfRangeDecl) Unwrap() error {
	return e.Err
}

// Argument has an invalid value, e.g. a fraction where an integer is expected
type ErrArgumentDecl struct {
	Name  string
	Value float64 `format:"%v"`
	Err   error
}

func (e *ErrArgumentDecl) Error() string {
	return ErrorBase(e)
}

func (e *ErrArgumentDecl) Unwrap() error {
	return e.Err
}

// Computed millisecond total left the representable range
type ErrOverflowDecl struct {
	Value float64 `format:"%v"`
	Err   error
}

func (e *ErrOverflowDecl) Error() string {
	return ErrorBase(e)
}

func (e *ErrOverflowDecl) Unwrap() error {
	return e.Err
}

// NewArgumentNull builds the error for a missing argument.
func NewArgumentNull(name string) error {
	return &ErrArgumentNullDecl{Name: name, Err: ErrArgumentNull}
}

// NewArgumentOutOfRange builds the error for a value outside of [min, max].
func NewArgumentOutOfRange(name string, value, min, max float64) error {
	return &ErrArgumentOutOfRangeDecl{Name: name, Value: value, Min: min, Max: max, Err: ErrArgumentOutOfRange}
}

// NewNotInteger builds the error for a fractional value.
func NewNotInteger(name string, value float64) error {
	return &ErrArgumentDecl{Name: name, Value: value, Err: ErrNotInteger}
}

// NewOverflow builds the error for a computed total out of range.
func NewOverflow(value float64) error {
	return &ErrOverflowDecl{Value: value, Err: ErrOverflow}
}
