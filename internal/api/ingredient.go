package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtessier/recipe-api/internal/service"
	"github.com/mtessier/recipe-api/internal/types"
)

type IngredientHandler struct {
	svc *service.IngredientService
}

func NewIngredientHandler(svc *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{svc: svc}
}

func (h *IngredientHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ingredients", h.List)
	r.GET("/recipe/ingredients/:recipe_id", h.ListByRecipe)
	r.POST("/recipe/ingredient/:recipe_id", h.Create)
	r.PATCH("/ingredient/:id", h.Update)
	r.DELETE("/ingredient/:id", h.Delete)
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) ListByRecipe(c *gin.Context) {
	ingredients, err := h.svc.ListByRecipe(c.Request.Context(), c.Param("recipe_id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req types.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "There were some errors.",
			"error":   true,
			"errors":  []string{err.Error()},
		})
		return
	}

	ingredient, err := h.svc.Create(c.Request.Context(), c.Param("recipe_id"), req)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found.", "error": true})
			return
		}
		if fe, ok := asFieldErrors(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "There were some errors.",
				"error":   true,
				"errors":  fe.Messages,
			})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Ingredient successfully created.",
		"ingredient": ingredient,
	})
}

func (h *IngredientHandler) Update(c *gin.Context) {
	var req types.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "There were some errors.",
			"error":   true,
			"errors":  []string{err.Error()},
		})
		return
	}

	ingredient, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ingredient not found.", "error": true})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Ingredient successfully updated.",
		"ingredient": ingredient,
	})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	ingredient, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ingredient not found.", "error": true})
			return
		}
		internalError(c, err)
		return
	}
	// The delete response echoes just the removed identifier.
	c.JSON(http.StatusOK, gin.H{
		"message":    "Ingredient successfully deleted.",
		"ingredient": ingredient.ID,
	})
}
