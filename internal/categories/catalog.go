package categories

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aaronzipp/aljasus/internal/models"
)

//go:embed words.json
var defaultWords []byte

// ErrNoCategories is returned when a catalog ends up with no usable category
var ErrNoCategories = errors.New("categories: catalog has no usable categories")

// Catalog is the read-only category lookup table, one list per game mode
type Catalog struct {
	Classic   []models.Category `json:"classic"`
	Chameleon []models.Category `json:"chameleon"`
}

// Default returns the embedded catalog
func Default() *Catalog {
	c, err := Parse(defaultWords)
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return c
}

// Parse decodes a JSON catalog and drops empty categories
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c.prune()
	if len(c.Classic) == 0 && len(c.Chameleon) == 0 {
		return nil, ErrNoCategories
	}
	return &c, nil
}

// LoadFile reads a JSON catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Categories returns the categories playable in mode
func (c *Catalog) Categories(mode models.GameMode) []models.Category {
	if mode == models.ModeChameleon {
		return c.Chameleon
	}
	return c.Classic
}

// Lookup finds a category by exact name within mode
func (c *Catalog) Lookup(mode models.GameMode, name string) (models.Category, bool) {
	for _, cat := range c.Categories(mode) {
		if cat.Name == name {
			return cat, true
		}
	}
	return models.Category{}, false
}

// Merge appends other's categories. A category whose name already exists in
// the same mode gets the new words/pairs appended to it.
func (c *Catalog) Merge(other *Catalog) {
	c.Classic = mergeInto(c.Classic, other.Classic)
	c.Chameleon = mergeInto(c.Chameleon, other.Chameleon)
}

func mergeInto(dst, src []models.Category) []models.Category {
	for _, cat := range src {
		found := false
		for i := range dst {
			if dst[i].Name == cat.Name {
				dst[i].Words = append(dst[i].Words, cat.Words...)
				dst[i].Pairs = append(dst[i].Pairs, cat.Pairs...)
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, cat)
		}
	}
	return dst
}

func (c *Catalog) prune() {
	classic := c.Classic[:0]
	for _, cat := range c.Classic {
		if cat.Name != "" && len(cat.Words) > 0 {
			classic = append(classic, cat)
		}
	}
	c.Classic = classic

	chameleon := c.Chameleon[:0]
	for _, cat := range c.Chameleon {
		if cat.Name != "" && len(cat.Pairs) > 0 {
			chameleon = append(chameleon, cat)
		}
	}
	c.Chameleon = chameleon
}
