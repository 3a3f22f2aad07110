package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is matched by chart errors caused by a chart or audio file that
	// cannot be located or read.
	ErrIO = errors.New("chart io")
	// ErrMalformed is matched by chart errors caused by a document that does
	// not have the expected shape.
	ErrMalformed = errors.New("malformed chart")
)

type ChartError struct {
	Kind error // ErrIO or ErrMalformed
	File string
	Err  error
}

func (e *ChartError) Error() string {
	if nil == e.Err {
		return fmt.Sprintf("%v: %v", e.Kind, e.File)
	}
	return fmt.Sprintf("%v: %v: %v", e.Kind, e.File, e.Err)
}

func (e *ChartError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(file string, err error) error {
	return &ChartError{Kind: ErrIO, File: file, Err: err}
}

func malformed(file string, format string, args ...interface{}) error {
	return &ChartError{Kind: ErrMalformed, File: file, Err: fmt.Errorf(format, args...)}
}
