// Package api translates between the HTTP layer and the entity
// services. Response envelopes differ between the recipe endpoints
// (bare documents, {"error": ...} failures) and the ingredient/step
// endpoints ({"message": ..., "error": true} failures); both shapes are
// part of the wire contract and preserved as-is.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtessier/recipe-api/internal/validation"
)

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func asFieldErrors(err error) (*validation.FieldErrors, bool) {
	var fe *validation.FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}
