package sm2

import (
	"errors"
	"math"
	"testing"
)

func TestComputeRejectsQualityOutOfRange(t *testing.T) {
	for _, q := range []int{-1, 6, 100} {
		_, err := Compute(NewState(), q)
		if !errors.Is(err, ErrQualityOutOfRange) {
			t.Errorf("quality %d: got %v, want ErrQualityOutOfRange", q, err)
		}
	}
}

func TestComputeFirstSuccessfulReview(t *testing.T) {
	// Scenario: 95% performance on a brand-new topic maps to quality 5.
	res, err := Compute(NewState(), 5)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", res.Repetitions)
	}
	if res.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", res.IntervalDays)
	}
	// Raw EF would be 2.6; it must clamp to the max.
	if res.Easiness != MaxEasiness {
		t.Errorf("easiness = %v, want clamped %v", res.Easiness, MaxEasiness)
	}
}

func TestComputeIntervalSequence(t *testing.T) {
	// Repeated passing quality must yield 1, 6, round(6*EF), round(prev*EF), ...
	st := NewState()
	want := []int{1, 6}
	var got []int

	for i := 0; i < 5; i++ {
		res, err := Compute(st, 4)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		got = append(got, res.IntervalDays)
		if i >= 2 {
			expected := int(math.Round(float64(st.IntervalDays) * res.Easiness))
			want = append(want, expected)
		}
		st = State{Easiness: res.Easiness, IntervalDays: res.IntervalDays, Repetitions: res.Repetitions}
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interval[%d] = %d, want %d (full sequence %v)", i, got[i], want[i], got)
		}
	}
}

func TestComputeFailureResets(t *testing.T) {
	// Scenario: quality 1 on a topic with 3 repetitions and a 40-day interval.
	st := State{Easiness: 2.1, IntervalDays: 40, Repetitions: 3}
	res, err := Compute(st, 1)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", res.Repetitions)
	}
	if res.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", res.IntervalDays)
	}
	// EF still moves on failure: 2.1 + (0.1 - 4*(0.08 + 4*0.02)) = 1.56.
	if diff := math.Abs(res.Easiness - 1.56); diff > 1e-9 {
		t.Errorf("easiness = %v, want 1.56", res.Easiness)
	}
}

func TestComputeEasinessNeverLeavesBounds(t *testing.T) {
	st := NewState()
	// Hammer the state with the worst quality, then the best, and check
	// the bound after every step.
	for i := 0; i < 20; i++ {
		q := 0
		if i >= 10 {
			q = 5
		}
		res, err := Compute(st, q)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if res.Easiness < MinEasiness || res.Easiness > MaxEasiness {
			t.Fatalf("step %d: easiness %v escaped [%v, %v]", i, res.Easiness, MinEasiness, MaxEasiness)
		}
		st = State{Easiness: res.Easiness, IntervalDays: res.IntervalDays, Repetitions: res.Repetitions}
	}
}

func TestComputeDeterministic(t *testing.T) {
	st := State{Easiness: 1.9, IntervalDays: 12, Repetitions: 4}
	first, err := Compute(st, 3)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Compute(st, 3)
		if err != nil {
			t.Fatalf("repeat %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("repeat %d: %+v != %+v", i, again, first)
		}
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		st   State
		want int
	}{
		{"never reviewed", NewState(), 1},
		{"after first review", State{Easiness: 2.5, IntervalDays: 1, Repetitions: 1}, 6},
		{"established", State{Easiness: 2.0, IntervalDays: 10, Repetitions: 3}, 20},
		{"rounds", State{Easiness: 2.5, IntervalDays: 3, Repetitions: 2}, 8},
	}
	for _, tt := range tests {
		if got := Project(tt.st); got != tt.want {
			t.Errorf("%s: Project = %d, want %d", tt.name, got, tt.want)
		}
	}
}
