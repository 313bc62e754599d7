package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtessier/recipe-api/internal/service"
	"github.com/mtessier/recipe-api/internal/types"
)

type RecipeHandler struct {
	svc *service.RecipeService
}

func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

func (h *RecipeHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/recipes", h.List)
	r.POST("/recipe", h.Create)
	r.PATCH("/recipe/:id", h.Update)
	r.DELETE("/recipe/:id", h.Delete)
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if fe, ok := asFieldErrors(err); ok {
			validationError(c, fe.Messages)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found."})
			return
		}
		if fe, ok := asFieldErrors(err); ok {
			validationError(c, fe.Messages)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	recipe, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// validationError renders recipe-endpoint validation failures: a single
// message under "error", several under "errors".
func validationError(c *gin.Context, messages []string) {
	if len(messages) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": messages[0]})
}
