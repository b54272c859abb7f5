package handlers

import (
	"errors"
	"log"
	"net/http"

	"household-energy-sim/internal/api/models"
	"household-energy-sim/internal/model"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondDomainError maps simulation errors to HTTP responses.
func respondDomainError(c *gin.Context, err error) {
	var inErr *model.InputError
	var alErr *model.AlignmentError
	switch {
	case errors.As(err, &alErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ALIGNMENT_ERROR",
				Message: err.Error(),
				Details: map[string]interface{}{"index": alErr.Index},
			},
		})
	case errors.As(err, &inErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
				Details: map[string]interface{}{"field": inErr.Field},
			},
		})
	default:
		log.Printf("handlers: unexpected error on %s: %v", c.Request.URL.Path, err)
		abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
