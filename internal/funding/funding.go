package funding

import "math"

// Progress returns the savings progress percentage for an event,
// clamped to [0, 100] and rounded to one decimal place (half away
// from zero). Non-financial events and events without a positive
// savings target always report 0.
func Progress(isFinancial bool, savingsTarget, amountSaved *float64) float64 {
	if !isFinancial || savingsTarget == nil || *savingsTarget <= 0 {
		return 0
	}
	saved := 0.0
	if amountSaved != nil {
		saved = *amountSaved
	}
	pct := math.Round(saved / *savingsTarget * 1000) / 10
	return math.Min(100, pct)
}

// FullyFunded reports whether a financial event has saved at least its
// target. Missing amounts are read as 0; non-financial events are
// never fully funded.
func FullyFunded(isFinancial bool, savingsTarget, amountSaved *float64) bool {
	if !isFinancial {
		return false
	}
	target, saved := 0.0, 0.0
	if savingsTarget != nil {
		target = *savingsTarget
	}
	if amountSaved != nil {
		saved = *amountSaved
	}
	return saved >= target
}
