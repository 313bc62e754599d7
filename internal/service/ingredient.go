package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtessier/recipe-api/internal/logger"
	"github.com/mtessier/recipe-api/internal/models"
	"github.com/mtessier/recipe-api/internal/types"
	"github.com/mtessier/recipe-api/internal/validation"
)

// IngredientService handles ingredient operations. Creation goes
// through the owning recipe: an ingredient can only be added to a
// recipe that exists.
type IngredientService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB, log *logger.Logger) *IngredientService {
	return &IngredientService{db: db, log: log}
}

// List returns all ingredients.
func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListByRecipe returns the ingredients owned by the given recipe. A
// malformed recipe id is a not-found error; a valid id with no
// matching recipe yields an empty list.
func (s *IngredientService) ListByRecipe(ctx context.Context, recipeID string) ([]models.Ingredient, error) {
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	ingredients := []models.Ingredient{}
	if err := s.db.WithContext(ctx).Find(&ingredients, "recipe_id = ?", rid).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Create adds an ingredient to a recipe. The recipe is looked up first
// and must exist; field validation runs before anything is persisted.
func (s *IngredientService) Create(ctx context.Context, recipeID string, req types.CreateIngredientRequest) (*models.Ingredient, error) {
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", rid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		ID:       uuid.New(),
		Name:     req.Name,
		Count:    *req.Count,
		Measure:  req.Measure,
		RecipeID: recipe.ID,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update shallow-merges the supplied fields into the stored ingredient.
func (s *IngredientService) Update(ctx context.Context, id string, req types.UpdateIngredientRequest) (*models.Ingredient, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrIngredientNotFound
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", iid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		ingredient.Name = *req.Name
	}
	if req.Count != nil {
		updates["count"] = *req.Count
		ingredient.Count = *req.Count
	}
	if req.Measure != nil {
		updates["measure"] = *req.Measure
		ingredient.Measure = *req.Measure
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", iid).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &ingredient, nil
}

// Delete removes the ingredient by id and returns the removed record.
// References to it inside step ingredient lists are left dangling.
func (s *IngredientService) Delete(ctx context.Context, id string) (*models.Ingredient, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrIngredientNotFound
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", iid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", iid).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
