package protocol

// Opponent is what the table can see of another player
type Opponent struct {
	Seat     int      `json:"seat"`
	HandSize int      `json:"handSize"`
	Sets     []string `json:"sets"`
}

// View is the table as seen by the player whose turn it is
type View struct {
	GameID    string     `json:"gameID"`
	Variant   string     `json:"variant"`
	Seat      int        `json:"seat"`
	Hand      []string   `json:"hand"`
	Sets      []string   `json:"sets"`
	DeckCount int        `json:"deckCount"`
	Opponents []Opponent `json:"opponents"`
	GameOver  bool       `json:"gameOver"`
	Winner    int        `json:"winner,omitempty"`
}
