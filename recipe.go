package mocktails

import (
	"fmt"
	"sort"
)

// Ingredient is one line of a recipe. Proportion is a relative weight within its recipe.
type Ingredient struct {
	Bottle     int `json:"bottle" yaml:"bottle"`
	Proportion int `json:"proportion" yaml:"proportion"`
}

type Recipe struct {
	Name        string       `json:"name" yaml:"name"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// TotalProportion is the sum of every ingredient's proportion.
func (r *Recipe) TotalProportion() int {
	total := 0
	for _, ing := range r.Ingredients {
		total += ing.Proportion
	}
	return total
}

// Validate checks the recipe can be planned. Bottle numbers are checked when each pour starts.
func (r *Recipe) Validate() error {
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("%s: %w", r.Name, ErrEmptyRecipe)
	}
	for i, ing := range r.Ingredients {
		if ing.Proportion <= 0 {
			return fmt.Errorf("%s line %d: %w (got %d)", r.Name, i, ErrInvalidProportion, ing.Proportion)
		}
	}
	return nil
}

func (r *Recipe) String() string {
	return fmt.Sprintf("%s = %v", r.Name, r.Ingredients)
}

// Menu maps recipe names to recipes.
type Menu map[string]*Recipe

func NewMenu(rr ...*Recipe) Menu {
	m := make(Menu, len(rr))
	for _, r := range rr {
		m[r.Name] = r
	}
	return m
}

func (m Menu) Lookup(name string) (*Recipe, error) {
	r, found := m[name]
	if !found {
		return nil, fmt.Errorf("%w: %q not in menu", ErrUnknownRecipe, name)
	}
	return r, nil
}

func (m Menu) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m Menu) Validate() error {
	for _, name := range m.Names() {
		if err := m[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}
