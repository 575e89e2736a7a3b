package yaml

import (
	"embed"
	"github.com/jt05610/mocktails"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

//go:embed menu.yaml
var menuYaml embed.FS

// Service reads and writes menus. A menu file maps each recipe name to its list of ingredients.
type Service struct {
}

func (s *Service) Load(r io.Reader) (mocktails.Menu, error) {
	var f map[string][]mocktails.Ingredient
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	menu := make(mocktails.Menu, len(f))
	for name, ingredients := range f {
		menu[name] = &mocktails.Recipe{Name: name, Ingredients: ingredients}
	}
	if err := menu.Validate(); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *Service) Flush(w io.Writer, menu mocktails.Menu) error {
	f := make(map[string][]mocktails.Ingredient, len(menu))
	for name, r := range menu {
		f[name] = r.Ingredients
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

func (s *Service) Open(path string) (mocktails.Menu, error) {
	df, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = df.Close()
	}()
	return s.Load(df)
}

// Default is the menu shipped with the rig.
func (s *Service) Default() (mocktails.Menu, error) {
	df, err := menuYaml.Open("menu.yaml")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = df.Close()
	}()
	return s.Load(df)
}
