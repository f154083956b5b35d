package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/session"
)

// RequireLogin rejects requests while no profile is recorded in the
// session store. There are no tokens or roles anywhere in this system;
// "logged in" just means a profile exists.
func RequireLogin(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
