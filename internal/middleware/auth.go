package middleware

import (
	"net/http"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// RequireAuth resolves the session cookie to a live account and stores it in
// the request context. Expired tokens and deleted accounts both fail here.
func RequireAuth(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		acct := accounts.ResolveSession(token)
		if acct == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		c.Set("username", acct.Username)
		c.Set("is_admin", acct.IsAdmin)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
