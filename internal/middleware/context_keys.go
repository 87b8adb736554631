package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the authenticated operator's ID in the
// request context. Using a custom type prevents collisions.
const operatorIDKey = contextKey("operatorID")

// GetOperatorIDFromContext retrieves the authenticated operator ID from the Gin
// context. It returns the operator ID and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	operatorIDVal := c.Request.Context().Value(operatorIDKey)
	if operatorIDVal == nil {
		return "", false
	}

	operatorID, ok := operatorIDVal.(string)
	if !ok {
		// Should not happen if the auth middleware sets it correctly
		return "", false
	}

	return operatorID, true
}
