package controllers

import (
	"errors"
	"net/http"

	"github.com/MohammadaminAlbooyeh/diet-diary/logger"
	"github.com/MohammadaminAlbooyeh/diet-diary/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto status codes. Unknown errors are
// logged and reported as 500 without their detail.
func respondError(c *gin.Context, err error) {
	var (
		ve *services.ValidationError
		le *services.LookupError
		nf *services.NotFoundError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &le):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
