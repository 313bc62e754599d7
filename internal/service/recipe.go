package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtessier/recipe-api/internal/logger"
	"github.com/mtessier/recipe-api/internal/models"
	"github.com/mtessier/recipe-api/internal/types"
	"github.com/mtessier/recipe-api/internal/validation"
)

// RecipeService handles recipe operations, including the deletion
// cascade and the update-timestamp refresh.
type RecipeService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log *logger.Logger) *RecipeService {
	return &RecipeService{db: db, log: log}
}

// List returns all recipes.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create validates the payload and persists a new recipe. On validation
// failure nothing is written and a *validation.FieldErrors is returned.
func (s *RecipeService) Create(ctx context.Context, req types.CreateRecipeRequest) (*models.Recipe, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update shallow-merges the supplied fields into the stored recipe and
// then refreshes updated_at as a second, best-effort write. A refresh
// failure is logged but never surfaced; the merged recipe is still
// returned.
func (s *RecipeService) Update(ctx context.Context, id string, req types.UpdateRecipeRequest) (*models.Recipe, error) {
	rid, err := uuid.Parse(id)
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

	updates := map[string]interface{}{}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &validation.FieldErrors{Messages: []string{"name must not be empty."}}
		}
		req.Name = &trimmed
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		updates["name"] = trimmed
		recipe.Name = trimmed
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		recipe.Description = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", rid).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", rid).Update("updated_at", now).Error; err != nil {
		s.log.Error("failed to refresh recipe updated_at", "recipe", rid, "error", err)
	} else {
		recipe.UpdatedAt = now
	}

	return &recipe, nil
}

// Delete removes the recipe and then cascades to its ingredients and
// steps. The cascade runs after the primary delete and is best-effort:
// a cascade failure is logged and swallowed, the recipe delete stands.
func (s *RecipeService) Delete(ctx context.Context, id string) (*models.Recipe, error) {
	rid, err := uuid.Parse(id)
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

	if err := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", rid).Error; err != nil {
		return nil, err
	}

	s.cascade(ctx, rid)

	return &recipe, nil
}

// cascade removes every ingredient and step owned by the deleted
// recipe. Ingredient references left inside other recipes' steps are
// not touched; those lists tolerate dangling entries.
func (s *RecipeService) cascade(ctx context.Context, rid uuid.UUID) {
	if err := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "recipe_id = ?", rid).Error; err != nil {
		s.log.Error("cascade delete of ingredients failed", "recipe", rid, "error", err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.Step{}, "recipe_id = ?", rid).Error; err != nil {
		s.log.Error("cascade delete of steps failed", "recipe", rid, "error", err)
	}
}
