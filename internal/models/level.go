package models

// Level is one entry of the curated list. Its position in `_list.json`
// is the level's rank (1-based), which drives score decay; rank is never
// stored on the level itself.
type Level struct {
	Name             string   `json:"name" validate:"required"`
	FileName         string   `json:"fileName"`
	Verifier         string   `json:"verifier"`
	Verification     string   `json:"verification"`
	PercentToQualify float64  `json:"percentToQualify" validate:"required,gte=1,lte=100"`
	Records          []Record `json:"records" validate:"dive"`
}

// Record is a single player submission on a level. Percent 100 counts as
// a completion, anything lower as partial progress.
type Record struct {
	User    string  `json:"user"`
	Percent float64 `json:"percent" validate:"gte=1,lte=100"`
	Link    string  `json:"link"`
}
