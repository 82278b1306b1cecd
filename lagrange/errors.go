package lagrange

import "errors"

var (
	ErrEmptyInput         = errors.New("at least one sample is required")
	ErrDuplicateX         = errors.New("sample x values must be unique")
	ErrNumericInstability = errors.New("interpolation resulted in NaN")
)

type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindEmptyInput
	ErrorKindDuplicateX
	ErrorKindNumericInstability
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindEmptyInput:
		return "empty_input"
	case ErrorKindDuplicateX:
		return "duplicate_x"
	case ErrorKindNumericInstability:
		return "numeric_instability"
	}

	return "unknown"
}

// KindOf classifies err into the interpolation error taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return ErrorKindEmptyInput
	case errors.Is(err, ErrDuplicateX):
		return ErrorKindDuplicateX
	case errors.Is(err, ErrNumericInstability):
		return ErrorKindNumericInstability
	}

	return ErrorKindUnknown
}
