package usecase

import (
	"math"
	"sort"

	"visitor-analytics-service/internal/analytics/core/domain"
)

// counter is an explicit reduction over one categorical field. The
// default-bucket policy is declared per call site: add skips rows whose
// key is genuinely absent, addOrDefault rebuckets them so every row stays
// attributable.
type counter struct {
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// add counts key, skipping empty values.
func (c *counter) add(key string) {
	if key == "" {
		return
	}
	c.counts[key]++
}

// addOrDefault counts key, attributing empty values to fallback.
func (c *counter) addOrDefault(key, fallback string) {
	if key == "" {
		key = fallback
	}
	c.counts[key]++
}

// count reports one bucket's total.
func (c *counter) count(key string) int {
	return c.counts[key]
}

// pairs returns every bucket sorted by count descending. Count ties break
// on the key ascending so identical inputs always serialize identically.
func (c *counter) pairs() []domain.KeyCount {
	out := make([]domain.KeyCount, 0, len(c.counts))
	for k, n := range c.counts {
		out = append(out, domain.KeyCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// top returns at most n buckets, highest counts first.
func (c *counter) top(n int) []domain.KeyCount {
	p := c.pairs()
	if len(p) > n {
		p = p[:n]
	}
	return p
}

// percent is round(num/den*100), 0 on a zero denominator.
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

// percent1 is num/den*100 rounded to one decimal, 0 on a zero denominator.
func percent1(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*1000) / 10
}

// avgInt is the mean rounded to the nearest integer, 0 on an empty set.
func avgInt(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// avg1 is the mean rounded to one decimal, 0 on an empty set.
func avg1(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
