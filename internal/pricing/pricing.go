package pricing

import (
	"strings"
	"time"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	peakStartHour = 18
	peakEndHour   = 22
)

var (
	vipMultiplier  = decimal.RequireFromString("1.30")
	peakMultiplier = decimal.RequireFromString("1.20")
	maxPointsRate  = decimal.RequireFromString("0.20")
	earnRate       = decimal.RequireFromString("0.01")
)

// Engine prices seats and converts loyalty points. Peak hours are evaluated
// on the wall clock of the cinema's location.
type Engine struct {
	location *time.Location
}

func NewEngine(location *time.Location) *Engine {
	if location == nil {
		location = time.Local
	}

	return &Engine{
		location: location,
	}
}

// SeatPrice applies the VIP multiplier first, then the peak multiplier, and
// rounds the result once.
func (e *Engine) SeatPrice(basePrice decimal.Decimal, seatType domain.SeatType, startTime time.Time) decimal.Decimal {
	price := basePrice

	if strings.EqualFold(string(seatType), string(domain.SeatTypeVIP)) {
		price = price.Mul(vipMultiplier)
	}

	if e.IsPeak(startTime) {
		price = price.Mul(peakMultiplier)
	}

	return RoundMoney(price)
}

func (e *Engine) IsPeak(startTime time.Time) bool {
	hour := startTime.In(e.location).Hour()
	return hour >= peakStartHour && hour < peakEndHour
}

// ApplyPointsDiscount redeems up to requestedPoints (clamped to availablePoints)
// as a discount of one currency unit per point, capped at 20% of total. The cap
// is cut down to whole cents so the redeemed amount never exceeds it.
func (e *Engine) ApplyPointsDiscount(total decimal.Decimal, availablePoints, requestedPoints int) decimal.Decimal {
	if requestedPoints <= 0 {
		return total
	}

	usable := min(requestedPoints, availablePoints)
	if usable <= 0 {
		return RoundMoney(total)
	}

	maxDiscount := total.Mul(maxPointsRate).Truncate(moneyPlaces)
	discount := decimal.Min(decimal.NewFromInt(int64(usable)), maxDiscount)

	result := total.Sub(discount)
	if result.IsNegative() {
		result = decimal.Zero
	}

	return RoundMoney(result)
}

// EarnedPoints returns the points credited for a paid total, 1% rounded down.
func (e *Engine) EarnedPoints(paidTotal decimal.Decimal) int {
	return int(paidTotal.Mul(earnRate).Floor().IntPart())
}

// UsedPoints derives the points consumed by a discount from the currency
// delta, truncated to a whole number of points.
func UsedPoints(totalBeforePoints, totalAfterPoints decimal.Decimal) int {
	return int(totalBeforePoints.Sub(totalAfterPoints).IntPart())
}

// RoundMoney rounds half away from zero to two places, which is half-up for
// every non-negative amount handled here.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlaces)
}
