package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/faizmokh/vibe/internal/mood"
)

// record is the stored shape of an Entry.
type record struct {
	ID        string `json:"id" yaml:"id"`
	Category  string `json:"category" yaml:"category"`
	Label     string `json:"label" yaml:"label"`
	Emoji     string `json:"emoji" yaml:"emoji"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Alternate names for label and category, accepted on read only.
	// Description holds free text that replaces a generic label.
	Mood        string `json:"mood,omitempty" yaml:"-"`
	Type        string `json:"type,omitempty" yaml:"-"`
	Description string `json:"description,omitempty" yaml:"-"`
}

func toRecord(e Entry) record {
	return record{
		ID:        e.ID,
		Category:  e.Category.String(),
		Label:     e.Label,
		Emoji:     e.Emoji,
		Note:      e.Note,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromRecord(r record) (Entry, error) {
	if strings.TrimSpace(r.ID) == "" {
		return Entry{}, errors.New("missing id")
	}

	name := r.Category
	if name == "" {
		name = r.Type
	}
	category, err := mood.ParseCategory(name)
	if err != nil {
		return Entry{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("parse timestamp: %w", err)
	}

	label := strings.TrimSpace(r.Description)
	if label == "" {
		label = r.Label
	}
	if label == "" {
		label = r.Mood
	}

	return Entry{
		ID:        r.ID,
		Category:  category,
		Label:     label,
		Emoji:     r.Emoji,
		Note:      r.Note,
		Timestamp: ts.UTC(),
	}, nil
}

// encode serializes entries in the order given.
func encode(entries []Entry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, toRecord(e))
	}
	return json.Marshal(records)
}

// decode parses a stored blob. A blob that is not a JSON list fails as a whole;
// individual unusable records are dropped and reported in skipped. When an id
// repeats, the first occurrence wins.
func decode(data []byte) (entries []Entry, skipped []error, err error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("decode journal: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	entries = make([]Entry, 0, len(records))
	for i, r := range records {
		entry, err := fromRecord(r)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			skipped = append(skipped, fmt.Errorf("record %d: duplicate id %q", i, entry.ID))
			continue
		}
		seen[entry.ID] = struct{}{}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}
