package booking

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/metinatakli/cinego/internal/booking"

type metrics struct {
	created       metric.Int64Counter
	paid          metric.Int64Counter
	cancelled     metric.Int64Counter
	seatConflicts metric.Int64Counter
	pointsUsed    metric.Int64Counter
	pointsEarned  metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)

	return &metrics{
		created:       newCounter(meter, "cinego.bookings.created", "Number of bookings created"),
		paid:          newCounter(meter, "cinego.bookings.paid", "Number of bookings paid"),
		cancelled:     newCounter(meter, "cinego.bookings.cancelled", "Number of bookings cancelled"),
		seatConflicts: newCounter(meter, "cinego.bookings.seat_conflicts", "Number of booking attempts rejected for held seats"),
		pointsUsed:    newCounter(meter, "cinego.loyalty.points_used", "Loyalty points redeemed on bookings"),
		pointsEarned:  newCounter(meter, "cinego.loyalty.points_earned", "Loyalty points credited on payment"),
	}
}

func newCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}

	return counter
}
