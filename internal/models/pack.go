package models

// Pack is a curated bundle of levels, referenced by file name. Points is
// always computed from the member levels' global ranks; a `points` field
// authored in `_packs.json` is ignored.
type Pack struct {
	ID     string   `json:"id" validate:"required"`
	Name   string   `json:"name" validate:"required"`
	Color  string   `json:"color"`
	Levels []string `json:"levels" validate:"min=1"`
	Points float64  `json:"points"`
}

// PackAward is a beaten pack as it appears on a leaderboard entry.
type PackAward struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points float64 `json:"points"`
}
