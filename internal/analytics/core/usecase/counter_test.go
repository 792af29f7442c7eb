package usecase

import (
	"reflect"
	"testing"

	"visitor-analytics-service/internal/analytics/core/domain"
)

func TestCounter_GroupingCompleteness(t *testing.T) {
	keys := []string{"a", "b", "a", "c", "b", "a", ""}

	c := newCounter()
	nonEmpty := 0
	for _, k := range keys {
		c.add(k)
		if k != "" {
			nonEmpty++
		}
	}

	sum := 0
	for _, p := range c.pairs() {
		sum += p.Count
	}
	if sum != nonEmpty {
		t.Fatalf("expected group counts to sum to %d, got %d", nonEmpty, sum)
	}
}

func TestCounter_DefaultBucket(t *testing.T) {
	c := newCounter()
	c.addOrDefault("", "direct")
	c.addOrDefault("search", "direct")
	c.addOrDefault("", "direct")

	if c.count("direct") != 2 {
		t.Fatalf("expected 2 rows attributed to direct, got %d", c.count("direct"))
	}
	if c.count("search") != 1 {
		t.Fatalf("expected 1 search row, got %d", c.count("search"))
	}
}

func TestCounter_OrderingIsDeterministic(t *testing.T) {
	build := func() []domain.KeyCount {
		c := newCounter()
		for _, k := range []string{"b", "a", "c", "a", "c", "b"} {
			c.add(k)
		}
		return c.pairs()
	}

	want := []domain.KeyCount{
		{Key: "a", Count: 2},
		{Key: "b", Count: 2},
		{Key: "c", Count: 2},
	}

	// Map iteration order must never leak into the result.
	for i := 0; i < 20; i++ {
		got := build()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestCounter_Top(t *testing.T) {
	c := newCounter()
	for _, k := range []string{"x", "x", "x", "y", "y", "z"} {
		c.add(k)
	}

	top := c.top(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Key != "x" || top[0].Count != 3 {
		t.Fatalf("unexpected first entry: %+v", top[0])
	}
	if top[1].Key != "y" || top[1].Count != 2 {
		t.Fatalf("unexpected second entry: %+v", top[1])
	}
}

func TestRateHelpers_ZeroDenominator(t *testing.T) {
	if percent(5, 0) != 0 {
		t.Fatalf("percent with zero denominator must be 0")
	}
	if percent1(5, 0) != 0 {
		t.Fatalf("percent1 with zero denominator must be 0")
	}
	if avgInt(5, 0) != 0 {
		t.Fatalf("avgInt with zero denominator must be 0")
	}
	if avg1(5, 0) != 0 {
		t.Fatalf("avg1 with zero denominator must be 0")
	}
}

func TestRateHelpers_Rounding(t *testing.T) {
	if got := percent(2, 5); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := percent(1, 3); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := percent1(3, 10); got != 30.0 {
		t.Fatalf("expected 30.0, got %v", got)
	}
	if got := avg1(7, 2); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
	if got := avgInt(7, 2); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
