package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtessier/recipe-api/internal/logger"
	"github.com/mtessier/recipe-api/internal/models"
	"github.com/mtessier/recipe-api/internal/types"
	"github.com/mtessier/recipe-api/internal/validation"
)

func strPtr(s string) *string { return &s }

func TestRecipeCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())
	ctx := context.Background()

	recipe, err := svc.Create(ctx, types.CreateRecipeRequest{
		Name:        "My new recipe",
		Description: "A family classic",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, "My new recipe", recipe.Name)
	assert.False(t, recipe.CreatedAt.IsZero())

	recipes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, recipe.ID, recipes[0].ID)
}

func TestRecipeCreateTrimsName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	recipe, err := svc.Create(context.Background(), types.CreateRecipeRequest{Name: "  Pancakes  "})
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", recipe.Name)
}

func TestRecipeCreateMissingName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	_, err := svc.Create(context.Background(), types.CreateRecipeRequest{Description: "nameless"})
	require.Error(t, err)

	var fe *validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	require.Len(t, fe.Messages, 1)
	assert.Contains(t, fe.Messages[0], "name")

	assert.EqualValues(t, 0, count(t, db, &models.Recipe{}))
}

func TestRecipeCreateNameTooLong(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	_, err := svc.Create(context.Background(), types.CreateRecipeRequest{Name: strings.Repeat("x", 31)})
	require.Error(t, err)

	var fe *validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.EqualValues(t, 0, count(t, db, &models.Recipe{}))
}

func TestRecipeUpdateShallowMerge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())
	ctx := context.Background()

	recipe, err := svc.Create(ctx, types.CreateRecipeRequest{Name: "Soup", Description: "Hot"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, recipe.ID.String(), types.UpdateRecipeRequest{Name: strPtr("Stew")})
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Name)
	assert.Equal(t, "Hot", updated.Description, "unspecified fields stay untouched")
	assert.False(t, updated.UpdatedAt.IsZero(), "updated_at refreshed on update")

	var stored models.Recipe
	require.NoError(t, db.First(&stored, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Stew", stored.Name)
	assert.Equal(t, "Hot", stored.Description)
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestRecipeUpdateMalformedID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	_, err := svc.Update(context.Background(), "1", types.UpdateRecipeRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeUpdateAbsentID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	_, err := svc.Update(context.Background(), uuid.NewString(), types.UpdateRecipeRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeUpdateRejectsEmptyName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())
	ctx := context.Background()

	recipe, err := svc.Create(ctx, types.CreateRecipeRequest{Name: "Soup"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, recipe.ID.String(), types.UpdateRecipeRequest{Name: strPtr("   ")})
	var fe *validation.FieldErrors
	require.True(t, errors.As(err, &fe))

	var stored models.Recipe
	require.NoError(t, db.First(&stored, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Soup", stored.Name)
}

func TestRecipeDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, logger.Nop())
	ingredients := NewIngredientService(db, logger.Nop())
	steps := NewStepService(db, logger.Nop())
	ctx := context.Background()

	recipe, err := recipes.Create(ctx, types.CreateRecipeRequest{Name: "Omelette"})
	require.NoError(t, err)
	other, err := recipes.Create(ctx, types.CreateRecipeRequest{Name: "Toast"})
	require.NoError(t, err)

	two := 2.0
	_, err = ingredients.Create(ctx, recipe.ID.String(), types.CreateIngredientRequest{Name: "Egg", Count: &two, Measure: "pieces"})
	require.NoError(t, err)
	_, err = ingredients.Create(ctx, recipe.ID.String(), types.CreateIngredientRequest{Name: "Butter", Count: &two, Measure: "tbsp"})
	require.NoError(t, err)
	_, err = ingredients.Create(ctx, other.ID.String(), types.CreateIngredientRequest{Name: "Bread", Count: &two, Measure: "slices"})
	require.NoError(t, err)

	pos := 1
	_, err = steps.Create(ctx, recipe.ID.String(), types.CreateStepRequest{Description: "Whisk the eggs", Position: &pos})
	require.NoError(t, err)

	deleted, err := recipes.Delete(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, deleted.ID)

	assert.EqualValues(t, 1, count(t, db, &models.Recipe{}))
	assert.EqualValues(t, 1, count(t, db, &models.Ingredient{}), "only the other recipe's ingredient survives")
	assert.EqualValues(t, 0, count(t, db, &models.Step{}))

	remaining, err := ingredients.ListByRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRecipeDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, logger.Nop())

	_, err := svc.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = svc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}
