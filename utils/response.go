// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a JSON error body and aborts the request.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithFieldErrors sends a 422 with per-field validation messages,
// matching the wire shape clients surface as inline form errors.
func RespondWithFieldErrors(c *gin.Context, message string, fieldErrors map[string]string) {
	c.AbortWithStatusJSON(422, gin.H{
		"message":     message,
		"fieldErrors": fieldErrors,
	})
}
