package utils

import "github.com/gin-gonic/gin"

// Message writes the {"message": ...} body used for acknowledgements and for
// every error response. No stack traces or internal identifiers go out.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Error is Message plus abort, for use inside middleware chains.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
