// Package content loads the static JSON content directory (level list,
// level files, packs, changelog) into immutable snapshots. All I/O and
// failure handling lives here; the aggregation engine only ever sees a
// complete snapshot with explicit per-level failure markers.
package content

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aicl/list-api/internal/models"
)

// ErrNoData signals that the master level list itself could not be
// loaded. Distinct from a list with zero levels: with ErrNoData there is
// nothing to aggregate at all.
var ErrNoData = errors.New("content: level list unavailable")

// LevelSlot is one position of the ordered level list. Exactly one of
// Level and Err is set; a slot with Err records a level file that failed
// to load without disturbing the ranks of its neighbours.
type LevelSlot struct {
	FileName string
	Level    *models.Level
	Err      error
}

// Snapshot is one complete, consistent read of the content directory.
// Snapshots are never mutated after construction; the store swaps whole
// snapshots atomically on reload.
type Snapshot struct {
	ID        uuid.UUID
	LoadedAt  time.Time
	Levels    []LevelSlot
	Packs     []models.Pack
	Changelog []models.ChangelogEntry
}

// FailedLevels returns the file names of level slots that could not be
// loaded, in list order.
func (s *Snapshot) FailedLevels() []string {
	var failed []string
	for _, slot := range s.Levels {
		if slot.Err != nil {
			failed = append(failed, slot.FileName)
		}
	}
	return failed
}

// Level returns the loaded level with the given file name and its
// 1-based rank, or nil if the file is unknown or failed to load.
func (s *Snapshot) Level(fileName string) (*models.Level, int) {
	for i, slot := range s.Levels {
		if slot.FileName == fileName && slot.Err == nil {
			return slot.Level, i + 1
		}
	}
	return nil, 0
}
