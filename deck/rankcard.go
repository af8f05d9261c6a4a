package deck

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a standard deck
const NumRanks = 13

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

// rankGlyphs is the first character of a card ID
var rankGlyphs = []byte("0A23456789TJQK")

// Valid reports whether r is Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Glyph returns the single character used for r in card IDs
func (r Rank) Glyph() byte {
	if !r.Valid() {
		return '?'
	}
	return rankGlyphs[r]
}

// Ranks returns every rank from Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

var suitNames = []string{"Clubs", "Spades", "Hearts", "Diamonds"}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Diamonds
}

func (s Suit) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Glyph is the first letter of the suit name
func (s Suit) Glyph() byte {
	if !s.Valid() {
		return '?'
	}
	return suitNames[s][0]
}

// constructionOrder is the order suits are pushed within a rank when a
// fresh deck is built.
var constructionOrder = []Suit{Clubs, Spades, Diamonds, Hearts}
