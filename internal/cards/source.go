package cards

import (
	"crypto/rand"
	"log"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type cryptoSource struct {
	warn sync.Once
}

// CryptoSource returns a Source backed by the system CSPRNG. If the CSPRNG
// fails, single draws fall back to math/rand/v2.
func CryptoSource() Source {
	return &cryptoSource{}
}

func (s *cryptoSource) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		s.warn.Do(func() {
			log.Printf("cards: crypto/rand failed, falling back to math/rand: %v", err)
		})
		return mrand.IntN(n)
	}
	return int(nBig.Int64())
}

// shuffle is a Fisher-Yates permutation driven by src.
func shuffle(cards []Card, src Source) {
	for i := len(cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
