package handlers

import (
	"github.com/gin-gonic/gin"
)

// respondError writes the error envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// abortError writes the error envelope and stops the handler chain
func abortError(c *gin.Context, status int, code, message string) {
	respondError(c, status, code, message)
	c.Abort()
}

// respondOK writes the success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
