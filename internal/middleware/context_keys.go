package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
	// hubIDKey stores the hub the token is scoped to. Every registry,
	// conversion and payment operation is bound to this hub.
	hubIDKey = contextKey("hubID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetHubIDFromContext retrieves the hub ID the request is scoped to.
func GetHubIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(hubIDKey); v != nil {
		hubID, ok := v.(string)
		return hubID, ok
	}
	return "", false
}
