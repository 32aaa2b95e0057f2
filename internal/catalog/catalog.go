// Package catalog holds the difficulty tiers and their word lists.
package catalog

import (
	"fmt"

	"github.com/verte-zerg/spellace/internal/generator"
	"github.com/verte-zerg/spellace/internal/model"
)

// Catalog maps difficulty identifiers to word lists.
type Catalog struct {
	gen   *generator.Generator
	tiers map[string][]model.Word
}

// New returns a catalog with the built-in word lists.
func New(gen *generator.Generator) *Catalog {
	c := &Catalog{
		gen:   gen,
		tiers: make(map[string][]model.Word, len(levels)),
	}
	for _, level := range levels {
		texts := builtinWords[level.ID]
		list := make([]model.Word, 0, len(texts))
		for _, text := range texts {
			list = append(list, model.Word{Text: text, Tier: level.Tier})
		}
		c.tiers[level.ID] = list
	}
	return c
}

// Levels returns the difficulty levels ordered by tier.
func (c *Catalog) Levels() []model.DifficultyLevel {
	out := make([]model.DifficultyLevel, len(levels))
	copy(out, levels)
	return out
}

// DifficultyByID looks up a difficulty level.
func (c *Catalog) DifficultyByID(id string) (model.DifficultyLevel, bool) {
	for _, level := range levels {
		if level.ID == id {
			return level, true
		}
	}
	return model.DifficultyLevel{}, false
}

// Known reports whether id names a difficulty level.
func (c *Catalog) Known(id string) bool {
	_, ok := c.tiers[id]
	return ok
}

// WordsFor returns the word list of a tier, or of the default tier when
// the identifier is unknown.
func (c *Catalog) WordsFor(id string) []model.Word {
	list, ok := c.tiers[id]
	if !ok {
		list = c.tiers[DefaultDifficulty]
	}
	out := make([]model.Word, len(list))
	copy(out, list)
	return out
}

// Sample draws count words from a tier without replacement.
func (c *Catalog) Sample(id string, count int) []model.Word {
	return c.gen.Sample(c.WordsFor(id), count)
}

// AddWords appends custom words to a tier and returns how many were new.
func (c *Catalog) AddWords(id string, texts []string) (int, error) {
	level, ok := c.DifficultyByID(id)
	if !ok {
		return 0, fmt.Errorf("unknown difficulty %q", id)
	}
	list := c.tiers[id]
	seen := make(map[string]struct{}, len(list)+len(texts))
	for _, w := range list {
		seen[w.Text] = struct{}{}
	}
	added := 0
	for _, text := range texts {
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		list = append(list, model.Word{Text: text, Tier: level.Tier})
		added++
	}
	c.tiers[id] = list
	return added, nil
}
