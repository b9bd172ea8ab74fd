package billing

import (
	"time"

	apperrors "github.com/parkgate-inc/parkgate/internal/shared/errors"
)

// Checkout computes the elapsed duration and final cost of a parking session.
// It is a pure function: no clock, no storage.
//
// Duration is whole elapsed minutes, truncated. A membership pins the cost to
// zero regardless of elapsed time or the supplied rate; otherwise the
// caller-supplied rate passes through unchanged — rate tables are the
// caller's concern, the zero-override and the duration are not.
//
// An exit before entry means a broken invariant (clock skew or a corrupted
// row) and is rejected, never clamped.
func Checkout(entryTime, exitTime time.Time, hasMembership bool, rate Money) (Money, int, error) {
	if exitTime.Before(entryTime) {
		return Money{}, 0, apperrors.NewInvalidStateError(
			"session exit time precedes entry time",
			"negative duration indicates clock skew or a corrupted session",
		)
	}

	minutes := int(exitTime.Sub(entryTime) / time.Minute)

	if hasMembership {
		return Zero(rate.Currency()), minutes, nil
	}

	if rate.IsNegative() {
		return Money{}, 0, apperrors.NewValidationError("session cost cannot be negative")
	}

	return rate, minutes, nil
}

// ElapsedMinutes returns whole truncated minutes between entry and now,
// clamped to zero. Used to surface live duration on still-open sessions.
func ElapsedMinutes(entryTime, now time.Time) int {
	if now.Before(entryTime) {
		return 0
	}
	return int(now.Sub(entryTime) / time.Minute)
}
