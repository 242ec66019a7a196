package recipe

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

// Recipe is a template declaration: where to clone it from and how to configure its hooks.
type Recipe struct {
	Name   string `mapstructure:"name"`
	Repo   string `mapstructure:"repo"`
	Branch string `mapstructure:"branch"`

	// Extra holds every other key of the declaration, read by hooks through Lookup.
	Extra map[string]any `mapstructure:",remain"`
}

type declaration struct {
	Recipe map[string]any `toml:"recipe"`
}

// Parse decodes a TOML recipe declaration, i.e. a document with a [recipe] table.
func Parse(data []byte) (*Recipe, error) {
	r, errs := parse(data)
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrParseRecipe, errors.Join(errs...))
	}
	return r, nil
}

// parse decodes a declaration and returns every problem found in it.
func parse(data []byte) (*Recipe, []error) {
	var decl declaration
	if err := toml.Unmarshal(data, &decl); err != nil {
		return nil, []error{err}
	}
	if decl.Recipe == nil {
		return nil, []error{errors.New("missing table `recipe`")}
	}

	var r Recipe
	if err := mapstructure.Decode(decl.Recipe, &r); err != nil {
		return nil, []error{err}
	}

	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("recipe: missing field `name`"))
	}
	if r.Repo == "" {
		errs = append(errs, errors.New("recipe: missing field `repo`"))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &r, nil
}

// Lookup reads the config value stored under key and decodes it into T.
// It returns false when the key is absent, and an error naming recipe.<key>
// when the value cannot be decoded into T.
func Lookup[T any](r *Recipe, key string) (T, bool, error) {
	var value T

	raw, ok := r.Extra[key]
	if !ok {
		return value, false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &value,
	})
	if err != nil {
		return value, true, fmt.Errorf("%w: recipe.%s: %w", ErrInvalidConfig, key, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return value, true, fmt.Errorf("%w: recipe.%s: %w", ErrInvalidConfig, key, err)
	}

	return value, true, nil
}
