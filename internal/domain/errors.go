package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrValidation          = errors.New("invalid booking request")
	ErrSeatAlreadyReserved = errors.New("seat is already booked for this screening")
	ErrInvalidState        = errors.New("invalid booking state")
	ErrConcurrentUpdate    = errors.New("booking data was changed by a concurrent transaction")
)
