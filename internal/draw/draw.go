package draw

import (
	"errors"
	"math/rand"
	"time"
)

// ErrExhausted is returned once every index in the pool has been dealt
var ErrExhausted = errors.New("draw pool exhausted")

// Deck deals the indexes [0, poolSize) in random order without
// replacement. A fresh deck is shuffled up front, so dealing is O(1)
// per call and every index is dealt exactly once.
type Deck struct {
	indexes []int
}

// Config for a deck
type Config struct {
	// PoolSize is the number of indexes to deal
	PoolSize int

	// Optional seed for testing
	Seed int64
}

// New creates a shuffled deck over [0, cfg.PoolSize)
func New(cfg *Config) (*Deck, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PoolSize < 1 {
		return nil, errors.New("pool size must be at least 1")
	}

	var seed int64
	if cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	random := rand.New(rand.NewSource(seed))

	return &Deck{
		indexes: random.Perm(cfg.PoolSize),
	}, nil
}

// Next deals the next index. It returns ErrExhausted once the deck is
// empty rather than looping for a free index.
func (d *Deck) Next() (int, error) {
	if len(d.indexes) == 0 {
		return 0, ErrExhausted
	}

	next := d.indexes[len(d.indexes)-1]
	d.indexes = d.indexes[:len(d.indexes)-1]

	return next, nil
}

// Remaining returns the number of indexes not yet dealt
func (d *Deck) Remaining() int {
	return len(d.indexes)
}
