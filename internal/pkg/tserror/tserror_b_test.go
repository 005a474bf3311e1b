package tserror

import (
	"errors"
	"testing"
)

func TestErrorBase(t *testing.T) {
	type args struct {
		errStruct interface{}
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "null argument",
			args: args{
				errStruct: &ErrArgumentNullDecl{
					Name: "value",
					Err:  ErrArgumentNull,
				},
			},
			want: "ErrArgumentNullDecl Name: `value`; \n\targument is null",
		},
		{
			name: "out of range",
			args: args{
				errStruct: &ErrArgumentOutOfRangeDecl{
					Name:  "hours",
					Value: 24,
					Min:   -23,
					Max:   23,
					Err:   ErrArgumentOutOfRange,
				},
			},
			want: "ErrArgumentOutOfRangeDecl Name: `hours`; Value: `24`; Min: `-23`; Max: `23`; \n\targument out of range",
		},
		{
			name: "overflow",
			args: args{
				errStruct: &ErrOverflowDecl{
					Value: 1.5,
					Err:   ErrOverflow,
				},
			},
			want: "ErrOverflowDecl Value: `1.5`; \n\toverflow",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorBase(tt.args.errStruct); got != tt.want {
				t.Errorf("ErrorBase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructorsUnwrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "null", err: NewArgumentNull("d1"), want: ErrArgumentNull},
		{name: "range", err: NewArgumentOutOfRange("days", 1e9, -1e8, 1e8), want: ErrArgumentOutOfRange},
		{name: "integer", err: NewNotInteger("value", 0.5), want: ErrNotInteger},
		{name: "overflow", err: NewOverflow(1e16), want: ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.want)
			}
		})
	}

	var rangeErr *ErrArgumentOutOfRangeDecl
	if !errors.As(NewArgumentOutOfRange("hours", 24, -23, 23), &rangeErr) {
		t.Fatal("errors.As() = false, want true")
	}

	if rangeErr.Name != "hours" || rangeErr.Max != 23 {
		t.Errorf("ErrArgumentOutOfRangeDecl = %+v", rangeErr)
	}
}
