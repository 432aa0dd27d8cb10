package models

// Changelog movement types.
const (
	ChangePlaced  = 1
	ChangeRaised  = 2
	ChangeLowered = 3
	ChangeSwapped = 4
	ChangeRemoved = 5
)

// ChangelogEntry is one list movement. P1 is the new rank, P2 the old
// one (raises/lowers); Secondary names the other level in a swap. Nil
// rank pointers mean the entry was authored without them.
type ChangelogEntry struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"`
	Type      int    `json:"type"`
	Level     string `json:"level,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	P1        *int   `json:"p1,omitempty"`
	P2        *int   `json:"p2,omitempty"`

	// ActionText is derived at read time, never authored.
	ActionText string `json:"actionText,omitempty"`
}
