// Package api holds the request and response bodies of the HTTP API.
package api

import (
	"time"
)

type BookingStatus string

const (
	CREATED   BookingStatus = "CREATED"
	PAID      BookingStatus = "PAID"
	CANCELLED BookingStatus = "CANCELLED"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateSessionRequest struct {
	UserId int `json:"userId" validate:"required,min=1"`
}

type SessionResponse struct {
	UserId        int    `json:"userId"`
	FullName      string `json:"fullName"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

type SeatPosition struct {
	Row int `json:"row" validate:"min=1"`
	Col int `json:"col" validate:"min=1"`
}

type CreateBookingRequest struct {
	ScreeningId int            `json:"screeningId" validate:"required,min=1"`
	Seats       []SeatPosition `json:"seats" validate:"required,min=1,dive"`
	Points      int            `json:"points" validate:"min=0"`
}

// Money fields of the responses are decimal strings with exactly two
// fraction digits.
type CreateBookingResponse struct {
	BookingId         int    `json:"bookingId"`
	TotalBeforePoints string `json:"totalBeforePoints"`
	TotalAfterPoints  string `json:"totalAfterPoints"`
	UsedPoints        int    `json:"usedPoints"`
}

type BookingItem struct {
	SeatId int    `json:"seatId"`
	Price  string `json:"price"`
}

type Booking struct {
	Id           int           `json:"id"`
	UserId       int           `json:"userId"`
	ScreeningId  int           `json:"screeningId"`
	Status       BookingStatus `json:"status"`
	TotalPrice   string        `json:"totalPrice"`
	RefundAmount string        `json:"refundAmount"`
	CreatedAt    time.Time     `json:"createdAt"`
	PaidAt       *time.Time    `json:"paidAt,omitempty"`
	CancelledAt  *time.Time    `json:"cancelledAt,omitempty"`
	Items        []BookingItem `json:"items,omitempty"`
}
