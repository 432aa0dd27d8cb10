package logic

import (
	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/models"
	"github.com/aicl/list-api/internal/scoring"
)

// packValue is a pack's computed worth plus the member files that could
// actually be resolved against the current level list.
type packValue struct {
	points  float64
	members []string
}

// valuePack computes a pack's point value: the sum of full-completion
// scores of its member levels at their GLOBAL list ranks, divided by
// scoring.PackDivisor. Member references that do not resolve against the
// level list are returned for diagnostics and excluded from both the
// value and the completion criterion.
func valuePack(levels []content.LevelSlot, pack models.Pack) (packValue, []string) {
	byFile := make(map[string]int, len(levels))
	for i, slot := range levels {
		if slot.Err == nil {
			byFile[slot.FileName] = i + 1
		}
	}

	var (
		value   packValue
		unknown []string
	)
	for _, file := range pack.Levels {
		rank, ok := byFile[file]
		if !ok {
			unknown = append(unknown, file)
			continue
		}
		value.points += scoring.Score(rank, 100, levels[rank-1].Level.PercentToQualify)
		value.members = append(value.members, file)
	}
	value.points /= scoring.PackDivisor

	return value, unknown
}

// PackPoints returns the packs with their point values filled in, for
// the standalone packs view.
func PackPoints(levels []content.LevelSlot, packs []models.Pack) ([]models.Pack, map[string][]string) {
	out := make([]models.Pack, len(packs))
	unresolved := make(map[string][]string)

	for i, pack := range packs {
		value, unknown := valuePack(levels, pack)
		pack.Points = value.points
		out[i] = pack
		if len(unknown) > 0 {
			unresolved[pack.ID] = unknown
		}
	}
	return out, unresolved
}
