package mocktails_test

import (
	"errors"
	"github.com/jt05610/mocktails"
	"testing"
)

func sunsetCooler() *mocktails.Recipe {
	return &mocktails.Recipe{
		Name: "SUNSET_COOLER",
		Ingredients: []mocktails.Ingredient{
			{Bottle: 0, Proportion: 4},
			{Bottle: 1, Proportion: 8},
			{Bottle: 2, Proportion: 1},
		},
	}
}

func TestMenu_Lookup(t *testing.T) {
	m := mocktails.NewMenu(sunsetCooler())
	r, err := m.Lookup("SUNSET_COOLER")
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalProportion() != 13 {
		t.Errorf("expected total 13, got %d", r.TotalProportion())
	}
	_, err = m.Lookup("NOT_A_DRINK")
	if !errors.Is(err, mocktails.ErrUnknownRecipe) {
		t.Errorf("expected ErrUnknownRecipe, got %v", err)
	}
}

func TestMenu_Names(t *testing.T) {
	m := mocktails.NewMenu(
		&mocktails.Recipe{Name: "b", Ingredients: []mocktails.Ingredient{{0, 1}}},
		&mocktails.Recipe{Name: "a", Ingredients: []mocktails.Ingredient{{0, 1}}},
	)
	names := m.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected [a b], got %v", names)
	}
}

func TestRecipe_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		recipe *mocktails.Recipe
		expect error
	}{
		{"ok", sunsetCooler(), nil},
		{"empty", &mocktails.Recipe{Name: "empty"}, mocktails.ErrEmptyRecipe},
		{"zero", &mocktails.Recipe{Name: "zero", Ingredients: []mocktails.Ingredient{{0, 0}}}, mocktails.ErrInvalidProportion},
		{"negative", &mocktails.Recipe{Name: "neg", Ingredients: []mocktails.Ingredient{{0, 2}, {1, -1}}}, mocktails.ErrInvalidProportion},
		{"bad bottle is fine here", &mocktails.Recipe{Name: "bottle", Ingredients: []mocktails.Ingredient{{99, 1}}}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.recipe.Validate()
			if tc.expect == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expect != nil && !errors.Is(err, tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, err)
			}
		})
	}
	m := mocktails.NewMenu(sunsetCooler(), &mocktails.Recipe{Name: "empty"})
	if err := m.Validate(); !errors.Is(err, mocktails.ErrEmptyRecipe) {
		t.Errorf("expected menu validation to fail, got %v", err)
	}
}
