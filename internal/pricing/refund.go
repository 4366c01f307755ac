package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const fullRefundNotice = 120 * time.Minute

var (
	earlyRefundRate = decimal.RequireFromString("0.90")
	lateRefundRate  = decimal.RequireFromString("0.50")
)

type RefundPolicy struct{}

func NewRefundPolicy() RefundPolicy {
	return RefundPolicy{}
}

// Refund returns 90% of total when cancelled at least two hours before the
// start, 50% when cancelled later but before the start, and nothing once the
// screening has started. Time-to-start is counted in whole minutes.
func (RefundPolicy) Refund(totalPrice decimal.Decimal, startTime, now time.Time) decimal.Decimal {
	if !now.Before(startTime) {
		return RoundMoney(decimal.Zero)
	}

	minutesUntilStart := startTime.Sub(now) / time.Minute
	rate := lateRefundRate
	if minutesUntilStart >= fullRefundNotice/time.Minute {
		rate = earlyRefundRate
	}

	return RoundMoney(totalPrice.Mul(rate))
}
