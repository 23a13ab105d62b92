package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InviteCodeMiddleware requires X-Invite-Code on the JSON sign-up API when a
// code is configured. An empty code leaves sign-up open.
func InviteCodeMiddleware(inviteCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if inviteCode == "" {
			c.Next()
			return
		}
		if !InviteCodeValid(c, inviteCode) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}

// InviteCodeValid reports whether the request carries the configured code in
// X-Invite-Code or the invite_code form field.
func InviteCodeValid(c *gin.Context, inviteCode string) bool {
	if inviteCode == "" {
		return true
	}
	clientKey := c.GetHeader("X-Invite-Code")
	if clientKey == "" {
		clientKey = c.PostForm("invite_code")
	}
	return subtle.ConstantTimeCompare([]byte(clientKey), []byte(inviteCode)) == 1
}
