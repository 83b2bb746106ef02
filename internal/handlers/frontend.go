package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowIndex is the landing page and the fail-open target of the redirect
// path. The dashboard itself lives in the separate web client.
func (h *Handler) ShowIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "shortly",
	})
}
