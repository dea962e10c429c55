package service

import (
	"errors"
	"fmt"
)

// ErrCode is a typed error code for consistent failure identification.
type ErrCode string

const (
	ErrCodeMalformedSubject ErrCode = "MALFORMED_SUBJECT"
)

// ErrCreditOverflow is returned when the credit total does not fit in an int.
var ErrCreditOverflow = errors.New("credit total overflows int")

// ErrMalformedSubject is matched by every *MissingFieldError.
var ErrMalformedSubject = errors.New("malformed subject record")

// MissingFieldError reports a subject whose credits are absent or invalid.
// Index is the zero-based position of the record in the input.
type MissingFieldError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	subject := fmt.Sprintf("subject #%d", e.Index)
	if e.Name != "" {
		subject = fmt.Sprintf("subject #%d (%q)", e.Index, e.Name)
	}
	return fmt.Sprintf("%s: %s: %s", subject, e.Field, e.Reason)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMalformedSubject
}

// Code returns the error code for e.
func (e *MissingFieldError) Code() ErrCode {
	return ErrCodeMalformedSubject
}
