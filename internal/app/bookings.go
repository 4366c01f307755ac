package app

import (
	"net/http"

	"github.com/metinatakli/cinego/api"
	"github.com/metinatakli/cinego/internal/booking"
	"github.com/metinatakli/cinego/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats := make([]domain.SeatPosition, len(input.Seats))
	for i, seat := range input.Seats {
		seats[i] = domain.SeatPosition{Row: seat.Row, Col: seat.Col}
	}

	result, err := app.bookings.Create(r.Context(), booking.CreateBookingInput{
		UserID:      userId,
		ScreeningID: input.ScreeningId,
		Seats:       seats,
		Points:      input.Points,
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.CreateBookingResponse{
		BookingId:         result.BookingID,
		TotalBeforePoints: formatMoney(result.TotalBeforePoints),
		TotalAfterPoints:  formatMoney(result.TotalAfterPoints),
		UsedPoints:        result.UsedPoints,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request, bookingID int) {
	b, err := app.bookings.Get(r.Context(), bookingID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, b)
}

func (app *Application) PayBookingHandler(w http.ResponseWriter, r *http.Request, bookingID int) {
	b, err := app.bookings.Pay(r.Context(), bookingID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, b)
}

func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request, bookingID int) {
	b, err := app.bookings.Cancel(r.Context(), bookingID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, b)
}

func (app *Application) writeBooking(w http.ResponseWriter, r *http.Request, b *domain.Booking) {
	err := app.writeJSON(w, http.StatusOK, toBookingResponse(b), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(b *domain.Booking) api.Booking {
	resp := api.Booking{
		Id:           b.ID,
		UserId:       b.UserID,
		ScreeningId:  b.ScreeningID,
		Status:       api.BookingStatus(b.Status),
		TotalPrice:   formatMoney(b.TotalPrice),
		RefundAmount: formatMoney(b.RefundAmount),
		CreatedAt:    b.CreatedAt,
		PaidAt:       b.PaidAt,
		CancelledAt:  b.CancelledAt,
	}

	for _, item := range b.Items {
		resp.Items = append(resp.Items, api.BookingItem{
			SeatId: item.SeatID,
			Price:  formatMoney(item.Price),
		})
	}

	return resp
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
