package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtessier/recipe-api/internal/service"
	"github.com/mtessier/recipe-api/internal/types"
)

type StepHandler struct {
	svc *service.StepService
}

func NewStepHandler(svc *service.StepService) *StepHandler {
	return &StepHandler{svc: svc}
}

func (h *StepHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/steps", h.List)
	r.GET("/recipe/steps/:recipe_id", h.ListByRecipe)
	r.POST("/recipe/step/:recipe_id", h.Create)
	r.PATCH("/step/:id", h.Patch)
}

func (h *StepHandler) List(c *gin.Context) {
	steps, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (h *StepHandler) ListByRecipe(c *gin.Context) {
	steps, err := h.svc.ListByRecipe(c.Request.Context(), c.Param("recipe_id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (h *StepHandler) Create(c *gin.Context) {
	var req types.CreateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "There were some errors.",
			"error":   true,
			"errors":  []string{err.Error()},
		})
		return
	}

	step, err := h.svc.Create(c.Request.Context(), c.Param("recipe_id"), req)
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
		"message": "Step successfully created.",
		"step":    step,
	})
}

func (h *StepHandler) Patch(c *gin.Context) {
	var req types.PatchStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "There were some errors.",
			"error":   true,
			"errors":  []string{err.Error()},
		})
		return
	}

	step, err := h.svc.Patch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrStepNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Step not found.", "error": true})
			return
		}
		internalError(c, err)
		return
	}

	// An ingredient patch echoes the raw add/remove input lists, not the
	// merged state; a plain field patch reports the full step.
	if req.HasIngredientPatch() {
		body := gin.H{"message": "Ingredients updated.", "step": step}
		if len(req.Add) > 0 {
			body["added"] = req.Add
		}
		if len(req.Remove) > 0 {
			body["removed"] = req.Remove
		}
		c.JSON(http.StatusOK, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Step successfully updated.",
		"step":    step,
	})
}
