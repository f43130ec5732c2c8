// Package journal owns the collection of mood entries and keeps it in sync
// with a kv.Slot.
package journal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faizmokh/vibe/internal/kv"
	"github.com/faizmokh/vibe/internal/mood"
)

// MaxLabelLength bounds custom mood labels, in runes.
const MaxLabelLength = 20

// DefaultWindowDays is used by Recent and Summary when no positive window is given.
const DefaultWindowDays = 7

const idAttempts = 8

// Store holds the authoritative in-memory journal. It is not safe for
// concurrent use; callers drive it from a single goroutine.
type Store struct {
	slot  kv.Slot
	log   zerolog.Logger
	now   func() time.Time
	newID func() string

	// entries is kept in insertion order, oldest first.
	entries    []Entry
	persistErr error
}

// Option customises a Store.
type Option func(*Store)

// WithLogger routes load and persist failures to log.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource replaces the UUID generator.
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns an empty store persisting to slot. Call Load to read existing entries.
func New(slot kv.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		log:   zerolog.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the slot contents. Any failure
// leaves the store empty and is logged, never returned.
func (s *Store) Load(ctx context.Context) {
	s.entries = nil

	data, err := s.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, kv.ErrAbsent) {
			s.log.Debug().Msg("no stored journal, starting empty")
			return
		}
		s.log.Warn().Err(err).Msg("read journal failed, starting empty")
		return
	}

	entries, skipped, err := decode(data)
	if err != nil {
		s.log.Warn().Err(err).Int("bytes", len(data)).Msg("stored journal is malformed, starting empty")
		return
	}
	for _, reason := range skipped {
		s.log.Warn().Err(reason).Msg("skipping stored entry")
	}

	// Stored newest first.
	slices.Reverse(entries)
	s.entries = entries
	s.log.Debug().Int("entries", len(entries)).Msg("journal loaded")
}

// persist writes the collection to the slot. Failures are logged and kept for
// PersistError; the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	data, err := encode(s.Entries())
	if err == nil {
		err = s.slot.Write(ctx, data)
	}
	if err != nil {
		s.log.Error().Err(err).Int("entries", len(s.entries)).Msg("persist journal failed")
	}
	s.persistErr = err
}

// PersistError returns the failure of the most recent write, or nil if it succeeded.
func (s *Store) PersistError() error {
	return s.persistErr
}

// Add records a new entry built from d and persists the journal.
func (s *Store) Add(ctx context.Context, d Draft) (Entry, error) {
	entry, err := s.build(d)
	if err != nil {
		return Entry{}, err
	}

	s.entries = append(s.entries, entry)
	s.log.Info().Str("id", entry.ID).Stringer("category", entry.Category).Msg("entry added")
	s.persist(ctx)
	return entry, nil
}

func (s *Store) build(d Draft) (Entry, error) {
	if !d.Category.Valid() {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(d.Category))
	}

	profile := mood.Lookup(d.Category)
	label := strings.TrimSpace(d.Label)
	emoji := strings.TrimSpace(d.Emoji)

	if d.Category == mood.Custom {
		if label == "" {
			return Entry{}, ErrLabelRequired
		}
		if utf8.RuneCountInString(label) > MaxLabelLength {
			return Entry{}, fmt.Errorf("%w: %d runes, max %d", ErrLabelTooLong, utf8.RuneCountInString(label), MaxLabelLength)
		}
	} else if label == "" {
		label = profile.DefaultLabel()
	}
	if emoji == "" {
		emoji = profile.Emoji
	}

	id, err := s.allocateID()
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		ID:        id,
		Category:  d.Category,
		Label:     label,
		Emoji:     emoji,
		Note:      strings.TrimSpace(d.Note),
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *Store) allocateID() (string, error) {
	for range idAttempts {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, ok := s.Get(id); !ok {
			return id, nil
		}
	}
	return "", errors.New("could not allocate a unique entry id")
}

// Delete removes the entry with id and persists the journal. Unknown ids are
// ignored without writing; the result reports whether anything was removed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	idx := slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
	if idx < 0 {
		s.log.Debug().Str("id", id).Msg("delete ignored, entry not found")
		return false
	}

	s.entries = slices.Delete(s.entries, idx, idx+1)
	s.log.Info().Str("id", id).Msg("entry deleted")
	s.persist(ctx)
	return true
}

// Current returns the entry with the latest timestamp. When timestamps tie,
// the most recently added entry wins.
func (s *Store) Current() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	best := s.entries[0]
	for _, e := range s.entries[1:] {
		if !e.Timestamp.Before(best.Timestamp) {
			best = e
		}
	}
	return best, true
}

// Entries returns a copy of the journal, newest first.
func (s *Store) Entries() []Entry {
	out := slices.Clone(s.entries)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// Len reports how many entries the journal holds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get looks an entry up by id.
func (s *Store) Get(id string) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Recent returns entries captured within the trailing windowDays, newest first.
func (s *Store) Recent(windowDays int) []Entry {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := s.now().Add(-time.Duration(windowDays) * 24 * time.Hour)

	var out []Entry
	for _, e := range s.Entries() {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Today returns the latest entry captured on the current calendar day, in the
// clock's location.
func (s *Store) Today() (Entry, bool) {
	now := s.now()
	for _, e := range s.Entries() {
		if sameDay(e.Timestamp.In(now.Location()), now) {
			return e, true
		}
	}
	return Entry{}, false
}

// Summary counts recent entries per category, most frequent first.
func (s *Store) Summary(windowDays int) []CategoryCount {
	counts := make(map[mood.Category]int)
	for _, e := range s.Recent(windowDays) {
		counts[e.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
