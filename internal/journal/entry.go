package journal

import (
	"time"

	"github.com/faizmokh/vibe/internal/mood"
)

// Entry is one recorded mood. Entries are never modified after creation.
type Entry struct {
	ID        string
	Category  mood.Category
	Label     string
	Emoji     string
	Note      string
	Timestamp time.Time
}

// Draft carries the user supplied fields for a new entry. Label, Emoji and Note
// may be left empty.
type Draft struct {
	Category mood.Category
	Label    string
	Emoji    string
	Note     string
}

// Keywords returns the keywords associated with the entry's mood.
func (e Entry) Keywords() []string {
	return mood.Keywords(e.Category, e.Label)
}

// CategoryCount is the number of entries recorded for one category.
type CategoryCount struct {
	Category mood.Category
	Count    int
}
