package mood

import (
	"math/rand/v2"
	"time"
)

// Suggestion pairs a quote and a track drawn from a category's profile.
type Suggestion struct {
	Category Category
	Quote    Quote
	Track    Track
}

// NewRand returns a PCG-backed source. A zero seed derives one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns one element of items chosen with r. It reports false when items is empty.
func Pick[T any](r *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if r == nil {
		return items[rand.IntN(len(items))], true
	}
	return items[r.IntN(len(items))], true
}

// Suggest draws a quote and a track for c.
func Suggest(c Category, r *rand.Rand) Suggestion {
	p := Lookup(c)
	s := Suggestion{Category: c}
	s.Quote, _ = Pick(r, p.Quotes)
	s.Track, _ = Pick(r, p.Tracks)
	return s
}
