package handlers

import (
	"shortly/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("shortly_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	if templatePath != "" {
		r.GET("/", h.ShowIndex)
	}
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)

	// Protected Routes
	api := r.Group("/api")
	api.Use(h.AuthRequired())
	{
		api.POST("/logout", h.LogoutUser)
		api.POST("/urls", h.CreateURL)
		api.GET("/urls", h.ListURLs)
		api.PATCH("/urls", h.UpdateURL)
		api.DELETE("/urls", h.DeleteURL)
		api.GET("/urls/:id/qr", h.URLQRCode)
	}

	// Catch-all Redirect
	r.GET("/:short_url", h.RedirectToURL)

	return r
}
