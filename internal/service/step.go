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

// StepService handles step operations, most notably the patch-merge
// that applies scalar updates and ingredient add/remove lists in one
// request.
type StepService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStepService creates a new StepService instance
func NewStepService(db *gorm.DB, log *logger.Logger) *StepService {
	return &StepService{db: db, log: log}
}

// List returns all steps.
func (s *StepService) List(ctx context.Context) ([]models.Step, error) {
	var steps []models.Step
	if err := s.db.WithContext(ctx).Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ListByRecipe returns the steps owned by the given recipe. A malformed
// recipe id is a not-found error; an absent recipe yields an empty list.
func (s *StepService) ListByRecipe(ctx context.Context, recipeID string) ([]models.Step, error) {
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	steps := []models.Step{}
	if err := s.db.WithContext(ctx).Find(&steps, "recipe_id = ?", rid).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// Create adds a step to a recipe, mirroring the ingredient creation
// workflow: the recipe must exist and the fields must validate before
// anything is written.
func (s *StepService) Create(ctx context.Context, recipeID string, req types.CreateStepRequest) (*models.Step, error) {
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

	step := models.Step{
		ID:          uuid.New(),
		Description: req.Description,
		Position:    *req.Position,
		Ingredients: models.StringArray(req.Ingredients),
		RecipeID:    recipe.ID,
	}
	if step.Ingredients == nil {
		step.Ingredients = models.StringArray{}
	}
	if err := s.db.WithContext(ctx).Create(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

// Patch applies a single request that may set scalar fields, append
// ingredient references and remove ingredient references. Adds are
// applied before removes, so a reference present in both lists is
// appended and then stripped again. Appends are not checked against the
// ingredient collection and are not deduplicated; removing a reference
// that is not present is a silent no-op.
func (s *StepService) Patch(ctx context.Context, id string, req types.PatchStepRequest) (*models.Step, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrStepNotFound
	}

	var step models.Step
	if err := s.db.WithContext(ctx).First(&step, "id = ?", sid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}

	step.Ingredients = append(step.Ingredients, req.Add...)

	if len(req.Remove) > 0 {
		excluded := make(map[string]struct{}, len(req.Remove))
		for _, ref := range req.Remove {
			excluded[ref] = struct{}{}
		}
		kept := models.StringArray{}
		for _, ref := range step.Ingredients {
			if _, drop := excluded[ref]; !drop {
				kept = append(kept, ref)
			}
		}
		step.Ingredients = kept
	}

	if req.Description != nil {
		step.Description = *req.Description
	}
	if req.Position != nil {
		step.Position = *req.Position
	}

	if err := s.db.WithContext(ctx).Save(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}
