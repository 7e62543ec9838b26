package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail writes the service's uniform error body.
func Detail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}

func BadRequest(c *gin.Context, message string) {
	Detail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Detail(c, http.StatusNotFound, message)
}

func ServerError(c *gin.Context, message string) {
	Detail(c, http.StatusInternalServerError, message)
}
