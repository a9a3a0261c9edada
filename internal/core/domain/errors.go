package domain

import "errors"

var (
	ErrVenueNotFound       = errors.New("venue data not found")
	ErrDeliveryUnavailable = errors.New("delivery not available for this distance")
	ErrInvalidInput        = errors.New("invalid input parameters")
	ErrPriceOverflow       = errors.New("price exceeds the representable range")
)

// InvalidInputError carries the reason a price request was rejected.
// It matches ErrInvalidInput under errors.Is.
type InvalidInputError struct {
	Reason string
}

func NewInvalidInput(reason string) *InvalidInputError {
	return &InvalidInputError{Reason: reason}
}

func (e *InvalidInputError) Error() string {
	if e.Reason == "" {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
