// Package logic contains the scoring aggregation engine and the services
// that expose its results. The engine itself is pure: one synchronous
// pass over a content snapshot, no I/O, no state outside the call.
package logic

import (
	"sort"
	"strings"

	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/models"
	"github.com/aicl/list-api/internal/scoring"
)

// accumulator collects one player identity's achievements during a
// single aggregation pass. cleared tracks level files with a 100%-tier
// achievement (verified or completed), which is what pack completion is
// judged on.
type accumulator struct {
	user        string
	verified    []models.Achievement
	completed   []models.Achievement
	progressed  []models.Achievement
	beatenPacks []models.PackAward
	cleared     map[string]bool
}

// Aggregate builds the full leaderboard from an ordered level sequence
// and a pack list. It returns the entries sorted by total descending and
// the file names of levels that failed to load (which contribute nothing
// to any player).
//
// Identity resolution is case-insensitive on the trimmed username; the
// first-seen casing becomes canonical for the whole pass. A blank
// verifier yields a 0-score verified achievement under the "" identity,
// which is kept in the output but never merges with a named player.
func Aggregate(levels []content.LevelSlot, packs []models.Pack) ([]models.LeaderboardEntry, []string) {
	var (
		order []*accumulator
		index = make(map[string]*accumulator)
		errs  []string
	)

	resolve := func(user string) *accumulator {
		user = strings.TrimSpace(user)
		key := strings.ToLower(user)
		if acc, ok := index[key]; ok {
			return acc
		}
		// Category slices start non-nil so entries serialize as [] rather
		// than null.
		acc := &accumulator{
			user:        user,
			verified:    []models.Achievement{},
			completed:   []models.Achievement{},
			progressed:  []models.Achievement{},
			beatenPacks: []models.PackAward{},
			cleared:     make(map[string]bool),
		}
		index[key] = acc
		order = append(order, acc)
		return acc
	}

	for i, slot := range levels {
		if slot.Err != nil {
			errs = append(errs, slot.FileName)
			continue
		}
		rank := i + 1
		level := slot.Level

		// Verification. Worth 0 when the verifier field is blank, but the
		// achievement is still listed: credit never silently disappears.
		verifier := resolve(level.Verifier)
		var verifierScore float64
		if verifier.user != "" {
			verifierScore = scoring.Score(rank, 100, level.PercentToQualify)
			verifier.cleared[slot.FileName] = true
		}
		verifier.verified = append(verifier.verified, models.Achievement{
			Rank:  rank,
			Level: level.Name,
			Score: verifierScore,
			Link:  level.Verification,
		})

		for _, record := range level.Records {
			if strings.TrimSpace(record.User) == "" {
				continue
			}
			acc := resolve(record.User)

			if record.Percent == 100 {
				acc.cleared[slot.FileName] = true
				acc.completed = append(acc.completed, models.Achievement{
					Rank:  rank,
					Level: level.Name,
					Score: scoring.Score(rank, 100, level.PercentToQualify),
					Link:  record.Link,
				})
				continue
			}

			acc.progressed = append(acc.progressed, models.Achievement{
				Rank:    rank,
				Level:   level.Name,
				Percent: record.Percent,
				Score:   scoring.Score(rank, record.Percent, level.PercentToQualify),
				Link:    record.Link,
			})
		}
	}

	// Pack bonuses: a pack is beaten when every resolvable member level
	// carries a 100%-tier achievement. Partial progress never counts.
	values := make([]packValue, len(packs))
	for i, pack := range packs {
		values[i], _ = valuePack(levels, pack)
	}

	for _, acc := range order {
		for i, pack := range packs {
			if len(values[i].members) == 0 {
				continue
			}
			if !beaten(acc.cleared, values[i].members) {
				continue
			}
			acc.beatenPacks = append(acc.beatenPacks, models.PackAward{
				ID:     pack.ID,
				Name:   pack.Name,
				Color:  pack.Color,
				Points: values[i].points,
			})
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(order))
	for _, acc := range order {
		var total float64
		for _, a := range acc.verified {
			total += a.Score
		}
		for _, a := range acc.completed {
			total += a.Score
		}
		for _, a := range acc.progressed {
			total += a.Score
		}
		for _, p := range acc.beatenPacks {
			total += p.Points
		}

		entries = append(entries, models.LeaderboardEntry{
			User:        acc.user,
			Total:       scoring.Round(total),
			Verified:    acc.verified,
			Completed:   acc.completed,
			Progressed:  acc.progressed,
			BeatenPacks: acc.beatenPacks,
		})
	}

	// Stable: ties keep first-discovery (list) order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, errs
}

func beaten(cleared map[string]bool, members []string) bool {
	for _, file := range members {
		if !cleared[file] {
			return false
		}
	}
	return true
}
