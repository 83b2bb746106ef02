package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shortly/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateURLRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required"`
}

type UpdateURLRequest struct {
	ID          uint   `json:"id" binding:"required"`
	OriginalURL string `json:"originalUrl" binding:"required"`
}

// CreateURL shortens a destination for the authenticated caller. The
// destination is any non-empty string; no scheme or host validation is done.
func (h *Handler) CreateURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	url, err := h.shortener.Create(userID, req.OriginalURL)
	if err != nil {
		h.logger.Error("url create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, url)
}

// ListURLs returns the caller's short URLs, newest first.
func (h *Handler) ListURLs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	urls, err := h.shortener.ListByOwner(userID)
	if err != nil {
		h.logger.Error("url list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, urls)
}

// UpdateURL replaces the destination of an owned record. Nonexistence and
// non-ownership both come back as 404.
func (h *Handler) UpdateURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	url, err := h.shortener.Update(userID, req.ID, req.OriginalURL)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found or unauthorized"})
		} else {
			h.logger.Error("url update failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	h.invalidateURLCache(c.Request.Context(), url.ShortURL)

	c.JSON(http.StatusOK, url)
}

// DeleteURL removes an owned record, identified by the id query parameter.
func (h *Handler) DeleteURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing URL ID"})
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL ID"})
		return
	}

	url, err := h.shortener.Delete(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found or unauthorized"})
		} else {
			h.logger.Error("url delete failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	h.invalidateURLCache(c.Request.Context(), url.ShortURL)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// URLQRCode renders a QR code PNG for an owned short link.
func (h *Handler) URLQRCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL ID"})
		return
	}

	url, err := h.shortener.GetByOwner(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found or unauthorized"})
		} else {
			h.logger.Error("url qr failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	png, err := h.qr.GeneratePNG(scheme+"://"+c.Request.Host+"/"+url.ShortURL, 0)
	if err != nil {
		h.logger.Error("url qr failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
