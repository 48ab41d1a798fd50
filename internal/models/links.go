package models

// LinkSet holds the outbound URLs derived for one artist
type LinkSet struct {
	// Listen is the primary link: a direct channel page when the artist carries a
	// valid channel ID, otherwise a platform search.
	Listen          string `json:"listen"`
	ListenIsChannel bool   `json:"listenIsChannel"`

	// Deep-dive searches built from the same encoded query
	Channels string `json:"channels"`
	Popular  string `json:"popular"`
	Latest   string `json:"latest"`
	Mixes    string `json:"mixes"`
}
