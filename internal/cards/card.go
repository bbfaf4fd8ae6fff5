package cards

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Suit string

const (
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Spades   Suit = "S"
)

// suits is the fixed suit set in canonical order.
var suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

const (
	MinRank = 1
	MaxRank = 13

	Jack  = 11
	Queen = 12
	King  = 13
)

// PackSize is the number of distinct cards in one pack.
const PackSize = MaxRank * len(suits)

// Card is an immutable playing card. The zero value is not a valid card;
// build cards with NewCard.
type Card struct {
	rank int
	suit Suit
}

// NewCard returns the card with the given rank and suit. The suit is
// case-insensitive and stored upper-cased.
func NewCard(rank int, suit rune) (Card, error) {
	s := Suit(string(unicode.ToUpper(suit)))
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: %w %d", ErrInvalidArgument, ErrInvalidRank, rank)
	}
	if !validSuit(s) {
		return Card{}, fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrInvalidSuit, suit)
	}
	return Card{rank: rank, suit: s}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(rank int, suit rune) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() int  { return c.rank }
func (c Card) Suit() Suit { return c.suit }

func (c Card) String() string {
	var r string
	switch c.rank {
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	default:
		r = strconv.Itoa(c.rank)
	}
	return r + string(c.suit)
}

// ParseCard reads a token in the form produced by String ("3S", "10H", "jd").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: card %q", ErrInvalidArgument, s)
	}
	suit := rune(s[len(s)-1])
	rankStr := s[:len(s)-1]
	var r int
	switch rankStr {
	case "J":
		r = Jack
	case "Q":
		r = Queen
	case "K":
		r = King
	default:
		v, err := strconv.Atoi(rankStr)
		if err != nil || v < MinRank || v > 10 || rankStr[0] == '0' || rankStr[0] == '+' {
			return Card{}, fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrInvalidRank, rankStr)
		}
		r = v
	}
	return NewCard(r, suit)
}

// Suits returns the four suits in canonical order.
func Suits() [4]Suit {
	return suits
}

// NewPack returns one unshuffled 52-card pack, rank-major.
func NewPack() []Card {
	pack := make([]Card, 0, PackSize)
	for r := MinRank; r <= MaxRank; r++ {
		for _, s := range suits {
			pack = append(pack, Card{rank: r, suit: s})
		}
	}
	return pack
}

func validSuit(s Suit) bool {
	for _, v := range suits {
		if v == s {
			return true
		}
	}
	return false
}

// index maps a valid card to [0, PackSize).
func (c Card) index() int {
	for i, s := range suits {
		if s == c.suit {
			return i*MaxRank + c.rank - 1
		}
	}
	return -1
}
