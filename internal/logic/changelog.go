package logic

import (
	"fmt"
	"sort"
	"time"

	"github.com/aicl/list-api/internal/models"
)

// changelogDateFormats are tried in order when sorting entries; content
// has carried both full timestamps and bare dates over time.
var changelogDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// Changelog returns the entries newest first with display text attached.
// The input slice is not modified.
func Changelog(entries []models.ChangelogEntry) []models.ChangelogEntry {
	out := make([]models.ChangelogEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return parseChangelogDate(out[i].Date).After(parseChangelogDate(out[j].Date))
	})

	for i := range out {
		out[i].ActionText = ActionText(out[i])
	}
	return out
}

// ActionText renders one movement event as the sentence shown in the
// changelog feed. Malformed entries degrade to a placeholder instead of
// being dropped.
func ActionText(e models.ChangelogEntry) string {
	switch e.Type {
	case models.ChangePlaced:
		if e.Level == "" {
			return "Placed (malformed entry)"
		}
		return fmt.Sprintf("Placed %s at %s.", e.Level, rankOrUnknown(e.P1))

	case models.ChangeRaised:
		if e.Level == "" {
			return "Raised (malformed entry)"
		}
		return fmt.Sprintf("Raised %s from #%s to #%s.", e.Level, rankOrUnknown(e.P2), rankOrUnknown(e.P1))

	case models.ChangeLowered:
		if e.Level == "" {
			return "Lowered (malformed entry)"
		}
		return fmt.Sprintf("Lowered %s from #%s to #%s.", e.Level, rankOrUnknown(e.P2), rankOrUnknown(e.P1))

	case models.ChangeSwapped:
		if e.Level == "" || e.Secondary == "" {
			return "Swapped (malformed swap)"
		}
		return fmt.Sprintf("Swapped %s with %s, with %s now above at #%s.",
			e.Level, e.Secondary, e.Level, rankOrUnknown(e.P1))

	case models.ChangeRemoved:
		if e.Level == "" {
			return "Removed (malformed entry)"
		}
		return fmt.Sprintf("Removed %s from the list.", e.Level)
	}

	return "Unknown (unknown type)"
}

func rankOrUnknown(p *int) string {
	if p == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *p)
}

func parseChangelogDate(date string) time.Time {
	for _, layout := range changelogDateFormats {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	// Unparseable dates sort to the end.
	return time.Time{}
}
