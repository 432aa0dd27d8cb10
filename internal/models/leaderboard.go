package models

// Achievement is one scored accomplishment on a level. Percent is only
// set for partial progress; verifications and completions are implicitly
// 100%.
type Achievement struct {
	Rank    int     `json:"rank"`
	Level   string  `json:"level"`
	Percent float64 `json:"percent,omitempty"`
	Score   float64 `json:"score"`
	Link    string  `json:"link"`
}

// LeaderboardEntry is one player row. Total is the rounded sum of every
// achievement score plus beaten-pack bonuses; Rank is the 1-based
// position after sorting by Total descending.
type LeaderboardEntry struct {
	Rank        int           `json:"rank"`
	User        string        `json:"user"`
	Total       float64       `json:"total"`
	Verified    []Achievement `json:"verified"`
	Completed   []Achievement `json:"completed"`
	Progressed  []Achievement `json:"progressed"`
	BeatenPacks []PackAward   `json:"beatenPacks"`
}
