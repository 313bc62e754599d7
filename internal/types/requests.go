package types

// CreateRecipeRequest is the payload for POST /recipe.
type CreateRecipeRequest struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description"`
}

// UpdateRecipeRequest is a field patch; nil pointers leave the stored
// value untouched.
type UpdateRecipeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=30"`
	Description *string `json:"description"`
}

// CreateIngredientRequest is the payload for POST /recipe/ingredient/:recipe_id.
type CreateIngredientRequest struct {
	Name    string   `json:"name" validate:"required"`
	Count   *float64 `json:"count" validate:"required"`
	Measure string   `json:"measure" validate:"required"`
}

// UpdateIngredientRequest is a field patch for PATCH /ingredient/:id.
type UpdateIngredientRequest struct {
	Name    *string  `json:"name"`
	Count   *float64 `json:"count"`
	Measure *string  `json:"measure"`
}

// CreateStepRequest is the payload for POST /recipe/step/:recipe_id.
type CreateStepRequest struct {
	Description string   `json:"description" validate:"required"`
	Position    *int     `json:"position" validate:"required"`
	Ingredients []string `json:"ingredients"`
}

// PatchStepRequest is the payload for PATCH /step/:id. Add and Remove
// patch the step's ingredient-reference list; the scalar fields are a
// shallow merge.
type PatchStepRequest struct {
	Description *string  `json:"description"`
	Position    *int     `json:"position"`
	Add         []string `json:"add"`
	Remove      []string `json:"remove"`
}

// HasIngredientPatch reports whether the request carries add/remove
// lists, which changes the response shape.
func (r PatchStepRequest) HasIngredientPatch() bool {
	return len(r.Add) > 0 || len(r.Remove) > 0
}
