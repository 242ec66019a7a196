// Package recipe provides recipe declarations and the recipe store.
package recipe

import "errors"

// Error definitions for recipe package.
var (
	// ErrReadRecipe is returned when a recipe file cannot be read.
	ErrReadRecipe = errors.New("failed to read recipe")

	// ErrParseRecipe is returned when a recipe file is not a valid declaration.
	ErrParseRecipe = errors.New("failed to parse recipe")

	// ErrInvalidConfig is returned when a recipe config value has the wrong shape.
	ErrInvalidConfig = errors.New("failed to parse recipe config")

	// ErrRecipeNotFound is returned when no recipe has the requested name.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipesDirectory is returned when the recipes directory cannot be prepared or read.
	ErrRecipesDirectory = errors.New("failed to access recipes directory")
)
