package cards

import (
	"context"
	"fmt"

	"cardshoe/internal/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StandardPacks is the pack count used by NewStandardDeck.
const StandardPacks = 6

// Deck is a shuffled shoe of one or more 52-card packs. Draws never run out:
// once every card has been dealt the whole shoe is reshuffled.
//
// A Deck must be built with NewDeck or NewStandardDeck; the zero value is not
// usable. A Deck is not safe for concurrent use.
type Deck struct {
	id         uuid.UUID
	cards      []Card
	cursor     int
	numPacks   int
	reshuffles int

	src       Source
	tracer    trace.Tracer
	selfCheck bool
}

type Option func(*Deck)

// WithSource sets the random source used for every shuffle.
func WithSource(src Source) Option {
	return func(d *Deck) {
		if src != nil {
			d.src = src
		}
	}
}

// WithSelfCheck re-verifies the deck after every mutation and panics on a
// violation.
func WithSelfCheck(on bool) Option {
	return func(d *Deck) { d.selfCheck = on }
}

func WithTracer(t trace.Tracer) Option {
	return func(d *Deck) {
		if t != nil {
			d.tracer = t
		}
	}
}

// NewDeck builds numPacks full packs and shuffles them together.
func NewDeck(numPacks int, opts ...Option) (*Deck, error) {
	if numPacks < 1 {
		return nil, fmt.Errorf("%w: %w %d", ErrInvalidArgument, ErrInvalidPackCount, numPacks)
	}
	d := &Deck{
		id:       uuid.New(),
		numPacks: numPacks,
		cards:    make([]Card, 0, numPacks*PackSize),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.src == nil {
		d.src = CryptoSource()
	}
	if d.tracer == nil {
		d.tracer = tracing.GetTracer()
	}
	pack := NewPack()
	for i := 0; i < numPacks; i++ {
		d.cards = append(d.cards, pack...)
	}
	shuffle(d.cards, d.src)
	d.check()
	return d, nil
}

// NewStandardDeck returns a StandardPacks deck.
func NewStandardDeck(opts ...Option) *Deck {
	d, err := NewDeck(StandardPacks, opts...)
	if err != nil {
		// StandardPacks is a valid count.
		panic(err)
	}
	return d
}

// DrawNext deals the next card, reshuffling first if the deck is exhausted.
func (d *Deck) DrawNext() Card {
	if d.numPacks == 0 {
		panic("cards: DrawNext on a Deck not built by NewDeck")
	}
	if d.cursor == len(d.cards) {
		d.reshuffle()
	}
	c := d.cards[d.cursor]
	d.cursor++
	d.check()
	return c
}

func (d *Deck) reshuffle() {
	_, span := d.tracer.Start(context.Background(), "deck.reshuffle")
	defer span.End()

	shuffle(d.cards, d.src)
	d.cursor = 0
	d.reshuffles++

	span.SetAttributes(
		attribute.String("deck.id", d.id.String()),
		attribute.Int("deck.packs", d.numPacks),
		attribute.Int("deck.cards", len(d.cards)),
		attribute.Int("deck.reshuffles", d.reshuffles),
	)
}

func (d *Deck) ID() uuid.UUID   { return d.id }
func (d *Deck) NumPacks() int   { return d.numPacks }
func (d *Deck) Len() int        { return len(d.cards) }
func (d *Deck) Remaining() int  { return len(d.cards) - d.cursor }
func (d *Deck) Reshuffles() int { return d.reshuffles }

// Verify recounts the deck and reports the first broken invariant.
func (d *Deck) Verify() error {
	if d.numPacks < 1 {
		return fmt.Errorf("%w: pack count %d", ErrCorruptDeck, d.numPacks)
	}
	if len(d.cards) != d.numPacks*PackSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrCorruptDeck, len(d.cards), d.numPacks*PackSize)
	}
	if d.cursor < 0 || d.cursor > len(d.cards) {
		return fmt.Errorf("%w: cursor %d out of [0, %d]", ErrCorruptDeck, d.cursor, len(d.cards))
	}
	var counts [PackSize]int
	for i, c := range d.cards {
		idx := c.index()
		if idx < 0 || c.rank < MinRank || c.rank > MaxRank {
			return fmt.Errorf("%w: invalid card %q at %d", ErrCorruptDeck, c.String(), i)
		}
		counts[idx]++
	}
	for idx, n := range counts {
		if n != d.numPacks {
			c := Card{rank: idx%MaxRank + 1, suit: suits[idx/MaxRank]}
			return fmt.Errorf("%w: %d copies of %s, want %d", ErrCorruptDeck, n, c, d.numPacks)
		}
	}
	return nil
}

func (d *Deck) check() {
	if !d.selfCheck {
		return
	}
	if err := d.Verify(); err != nil {
		panic(fmt.Sprintf("cards: deck %s: %v", d.id, err))
	}
}
