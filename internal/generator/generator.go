// Package generator draws randomized word selections.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/spellace/internal/model"
)

// Generator produces randomized word samples.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample returns count words drawn without replacement in random order.
// When fewer than count words are available, all of them are returned shuffled.
func (g *Generator) Sample(words []model.Word, count int) []model.Word {
	if count <= 0 || len(words) == 0 {
		return []model.Word{}
	}
	if count > len(words) {
		count = len(words)
	}
	perm := g.rnd.Perm(len(words))
	result := make([]model.Word, 0, count)
	for _, idx := range perm[:count] {
		result = append(result, words[idx])
	}
	return result
}
