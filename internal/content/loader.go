package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aicl/list-api/internal/models"
)

// listFile names the ordered index of level files; each entry "foo"
// refers to "foo.json" in the same directory.
const (
	listFile      = "_list.json"
	packsFile     = "_packs.json"
	changelogFile = "_changelog.json"
)

// load reads the whole content directory into a fresh snapshot. Only a
// missing or malformed level list is fatal (ErrNoData); individual level
// files that fail become error slots, and missing packs/changelog files
// degrade to empty sections.
func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	names, err := s.readList()
	if err != nil {
		return nil, err
	}

	slots := make([]LevelSlot, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-ctx.Done():
				slots[i] = LevelSlot{FileName: name, Err: ctx.Err()}
				return nil
			default:
			}
			slots[i] = s.loadLevel(name)
			return nil
		})
	}
	g.Wait()

	snap := &Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now().UTC(),
		Levels:   slots,
	}

	if packs, err := s.loadPacks(); err != nil {
		s.logger.Warnw("Failed to load packs", "file", packsFile, "error", err)
	} else {
		snap.Packs = packs
	}

	if changelog, err := s.loadChangelog(); err != nil {
		s.logger.Warnw("Failed to load changelog", "file", changelogFile, "error", err)
	} else {
		snap.Changelog = changelog
	}

	return snap, nil
}

// readList reads the ordered level file names. The order here IS the
// ranking; it is preserved exactly, never re-sorted.
func (s *Store) readList() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, listFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return names, nil
}

func (s *Store) loadLevel(name string) LevelSlot {
	slot := LevelSlot{FileName: name}

	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		slot.Err = fmt.Errorf("read level %s: %w", name, err)
		return slot
	}

	level := &models.Level{}
	if err := json.Unmarshal(data, level); err != nil {
		slot.Err = fmt.Errorf("parse level %s: %w", name, err)
		return slot
	}
	level.FileName = name
	level.Verifier = strings.TrimSpace(level.Verifier)

	if err := s.validate.Struct(level); err != nil {
		slot.Err = fmt.Errorf("invalid level %s: %w", name, err)
		return slot
	}

	slot.Level = level
	return slot
}

func (s *Store) loadPacks() ([]models.Pack, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, packsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var packs []models.Pack
	if err := json.Unmarshal(data, &packs); err != nil {
		return nil, err
	}

	valid := packs[:0]
	for _, pack := range packs {
		if err := s.validate.Struct(pack); err != nil {
			s.logger.Warnw("Skipping invalid pack", "pack", pack.ID, "error", err)
			continue
		}
		// Points is computed from member ranks, never authored.
		pack.Points = 0
		valid = append(valid, pack)
	}
	return valid, nil
}

func (s *Store) loadChangelog() ([]models.ChangelogEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, changelogFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.ChangelogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
