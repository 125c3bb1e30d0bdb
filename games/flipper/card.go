package flipper

import (
	"math/rand/v2"
	"strconv"
)

// Card packs the suit in the high nibble and the rank (1..13) in the low one.
type Card byte

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

func (s Suit) String() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Club:
		return "C"
	case Diamond:
		return "D"
	}
	return "?"
}

func NewCard(rank int, suit Suit) Card {
	return Card(byte(suit)<<4 | byte(rank))
}

func (c Card) Rank() int  { return int(c & 0x0F) }
func (c Card) Suit() Suit { return Suit(c >> 4) }

// Red reports whether the card is a heart or a diamond.
func (c Card) Red() bool {
	return c.Suit() == Heart || c.Suit() == Diamond
}

func (c Card) String() string {
	var rank string
	switch r := c.Rank(); r {
	case 1:
		rank = "A"
	case 11:
		rank = "J"
	case 12:
		rank = "Q"
	case 13:
		rank = "K"
	default:
		rank = strconv.Itoa(r)
	}
	return rank + c.Suit().String()
}

// NewDeck returns the 52 cards in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Spade; s <= Diamond; s++ {
		for r := 1; r <= 13; r++ {
			deck = append(deck, NewCard(r, s))
		}
	}
	return deck
}

func Shuffle(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
