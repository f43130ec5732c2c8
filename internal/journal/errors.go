package journal

import (
	"errors"

	"github.com/faizmokh/vibe/internal/mood"
)

// ErrUnknownCategory is returned when a draft names a category outside the catalogue.
var ErrUnknownCategory = mood.ErrUnknownCategory

// ErrLabelRequired indicates a custom mood was captured without describing it.
var ErrLabelRequired = errors.New("custom mood needs a label")

// ErrLabelTooLong indicates the label exceeds MaxLabelLength runes.
var ErrLabelTooLong = errors.New("label is too long")

// ErrNotFound is returned when an entry id is not in the journal.
var ErrNotFound = errors.New("entry not found")
