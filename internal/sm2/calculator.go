// Package sm2 implements the SuperMemo-2 interval computation and the
// performance-to-quality mapping it is fed with. Everything here is
// pure: identical inputs always produce identical outputs, and no
// state is touched.
package sm2

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinEasiness and MaxEasiness bound the easiness factor.
	MinEasiness = 1.3
	MaxEasiness = 2.5

	// InitialEasiness is the easiness factor for a never-reviewed topic.
	InitialEasiness = 2.5

	// PassingQuality is the lowest quality counted as a successful recall.
	PassingQuality = 3

	firstInterval  = 1
	secondInterval = 6
)

// ErrQualityOutOfRange is returned when a quality signal falls outside
// the 0..5 scale.
var ErrQualityOutOfRange = errors.New("quality outside [0, 5]")

// State is the slice of mastery state the formula depends on.
type State struct {
	Easiness     float64
	IntervalDays int
	Repetitions  int
}

// NewState returns the state of a topic before its first review.
func NewState() State {
	return State{Easiness: InitialEasiness}
}

// Result is the outcome of one Compute call.
type Result struct {
	IntervalDays int
	Easiness     float64
	Repetitions  int
}

// Compute applies one quality signal to prev and returns the next
// interval, easiness factor and repetition count.
//
// The easiness update EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)) is
// always applied and clamped to [MinEasiness, MaxEasiness]. A failing
// quality (< 3) resets the repetition count to zero and the interval
// to one day regardless of history; a passing quality advances the
// sequence 1, 6, round(previous * EF').
func Compute(prev State, quality int) (Result, error) {
	if quality < 0 || quality > 5 {
		return Result{}, fmt.Errorf("quality %d: %w", quality, ErrQualityOutOfRange)
	}

	q := float64(quality)
	ef := prev.Easiness + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEasiness {
		ef = MinEasiness
	}
	if ef > MaxEasiness {
		ef = MaxEasiness
	}

	if quality < PassingQuality {
		return Result{IntervalDays: 1, Easiness: ef, Repetitions: 0}, nil
	}

	reps := prev.Repetitions + 1
	var interval int
	switch reps {
	case 1:
		interval = firstInterval
	case 2:
		interval = secondInterval
	default:
		interval = int(math.Round(float64(prev.IntervalDays) * ef))
		if interval < 1 {
			interval = 1
		}
	}

	return Result{IntervalDays: interval, Easiness: ef, Repetitions: reps}, nil
}

// Project returns the interval a further successful review would earn,
// without mutating anything. Plan builders use it to place projected
// review sessions inside a horizon; the authoritative numbers still
// come from Compute at completion time.
func Project(st State) int {
	switch st.Repetitions {
	case 0:
		return firstInterval
	case 1:
		return secondInterval
	default:
		next := int(math.Round(float64(st.IntervalDays) * st.Easiness))
		if next < 1 {
			next = 1
		}
		return next
	}
}
