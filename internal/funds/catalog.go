// Package funds provides the static fund descriptions used by KYP analyses.
package funds

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category identifies one of the two fund description collections.
type Category string

const (
	// Equities is the equities fund collection.
	Equities Category = "equities"
	// FixedIncome is the fixed-income fund collection.
	FixedIncome Category = "fixed_income"
)

// Categories lists the collections in the order they appear in forms and reports.
var Categories = []Category{Equities, FixedIncome}

// Valid reports whether c names a known collection.
func (c Category) Valid() bool {
	return c == Equities || c == FixedIncome
}

// Label returns the human-readable collection name.
func (c Category) Label() string {
	switch c {
	case Equities:
		return "Equities"
	case FixedIncome:
		return "Fixed Income"
	default:
		return string(c)
	}
}

// Fund is a single fund description keyed by its display name.
type Fund struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"-" json:"category"`
	Text     string   `yaml:"text" json:"text"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// catalogFile mirrors the layout of catalog.yaml
type catalogFile struct {
	Equities    []Fund `yaml:"equities"`
	FixedIncome []Fund `yaml:"fixed_income"`
}

// Catalog holds the immutable fund collections.
// A Catalog is safe for concurrent use because it is never mutated after Parse.
type Catalog struct {
	ordered map[Category][]Fund
	byName  map[Category]map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary, parsing it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is like Default but panics if the embedded catalog is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a Catalog from YAML content with equities and fixed_income lists.
func Parse(content []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog YAML", Cause: err}
	}

	c := &Catalog{
		ordered: make(map[Category][]Fund, len(Categories)),
		byName:  make(map[Category]map[string]int, len(Categories)),
	}
	if err := c.add(Equities, file.Equities); err != nil {
		return nil, err
	}
	if err := c.add(FixedIncome, file.FixedIncome); err != nil {
		return nil, err
	}

	for name := range c.byName[Equities] {
		if _, dup := c.byName[FixedIncome][name]; dup {
			return nil, &CatalogError{Message: fmt.Sprintf("fund %q listed in both collections", name)}
		}
	}

	return c, nil
}

func (c *Catalog) add(category Category, entries []Fund) error {
	if len(entries) == 0 {
		return &CatalogError{Message: fmt.Sprintf("collection %s is empty", category)}
	}

	funds := make([]Fund, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, f := range entries {
		if strings.TrimSpace(f.Name) == "" {
			return &CatalogError{Message: fmt.Sprintf("collection %s has a fund without a name", category)}
		}
		if strings.TrimSpace(f.Text) == "" {
			return &CatalogError{Message: fmt.Sprintf("fund %q has no description", f.Name)}
		}
		if _, dup := index[f.Name]; dup {
			return &CatalogError{Message: fmt.Sprintf("duplicate fund %q in %s", f.Name, category)}
		}
		f.Category = category
		index[f.Name] = len(funds)
		funds = append(funds, f)
	}

	c.ordered[category] = funds
	c.byName[category] = index
	return nil
}

// Lookup returns the fund with the given display name. The boolean is false
// when the name is not part of the collection.
func (c *Catalog) Lookup(category Category, name string) (Fund, bool) {
	idx, ok := c.byName[category][name]
	if !ok {
		return Fund{}, false
	}
	return c.ordered[category][idx], true
}

// Names returns the display names of a collection in catalog order.
func (c *Catalog) Names(category Category) []string {
	funds := c.ordered[category]
	names := make([]string, len(funds))
	for i, f := range funds {
		names[i] = f.Name
	}
	return names
}

// Funds returns a copy of a collection in catalog order.
func (c *Catalog) Funds(category Category) []Fund {
	funds := c.ordered[category]
	out := make([]Fund, len(funds))
	copy(out, funds)
	return out
}

// Len returns the total number of funds across all collections.
func (c *Catalog) Len() int {
	n := 0
	for _, funds := range c.ordered {
		n += len(funds)
	}
	return n
}
