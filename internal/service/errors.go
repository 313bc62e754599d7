package service

import "errors"

// Not-found sentinels. A syntactically invalid identifier resolves to
// the same error as a valid-but-absent record, so callers cannot tell
// the two apart.
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrStepNotFound       = errors.New("step not found")
)
