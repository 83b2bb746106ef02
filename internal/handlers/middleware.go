package handlers

import (
	"errors"
	"net/http"

	"shortly/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionTokenKey  = "session_token"
	contextUserIDKey = "user_id"
)

// AuthRequired resolves the caller's identity from the session cookie and
// aborts with 401 before any handler runs if there is none. The cookie only
// carries the opaque token; the sessions table decides validity and expiry.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(sessionTokenKey).(string)

		userID, err := h.sessions.Resolve(token)
		if err != nil {
			if errors.Is(err, services.ErrNoSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			} else {
				h.logger.Error("session resolve failed", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			}
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// currentUserID reads the identity AuthRequired placed in the context.
func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
