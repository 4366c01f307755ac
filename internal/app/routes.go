package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinego-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/session", func(r chi.Router) {
		r.Post("/", app.CreateSession)
		r.Delete("/", app.DeleteSession)
	})

	r.With(app.requireUser).Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBookingHandler)

		r.Route("/{bookingId}", func(r chi.Router) {
			r.Get("/", app.withBookingID(app.GetBookingHandler))
			r.Post("/payment", app.withBookingID(app.PayBookingHandler))
			r.Post("/cancellation", app.withBookingID(app.CancelBookingHandler))
		})
	})

	return r
}

func (app *Application) withBookingID(next func(http.ResponseWriter, *http.Request, int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := strconv.Atoi(chi.URLParam(r, "bookingId"))
		if err != nil || bookingID < 1 {
			app.badRequestResponse(w, r, fmt.Errorf("invalid booking ID"))
			return
		}

		next(w, r, bookingID)
	}
}
