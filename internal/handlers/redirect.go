package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shortly/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RedirectToURL maps a short token to its destination and counts the visit.
// This path is public and fails open: a missing token or any storage failure
// sends the visitor to the home page, never an error.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_url")
	ctx := c.Request.Context()

	var urlEntry models.URL

	// 1. Cache lookup (full record)
	cacheHit := false
	if h.rdb != nil {
		val, err := h.rdb.Get(ctx, urlCacheKey(shortCode)).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(val), &urlEntry); err == nil {
				cacheHit = true
			}
		}
	}

	// 2. Store lookup on cache miss
	if !cacheHit {
		found, err := h.shortener.FindByShortCode(shortCode)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				h.logger.Error("url redirect failed", "short_url", shortCode, "error", err)
			}
			c.Redirect(http.StatusFound, "/")
			return
		}
		urlEntry = *found

		if h.rdb != nil {
			if data, err := json.Marshal(urlEntry); err == nil {
				h.rdb.Set(ctx, urlCacheKey(shortCode), data, urlCacheTTL)
			}
		}
	}

	// 3. Count the visit. Zero rows means the record vanished behind a stale
	// cache entry; treat it the same as not found.
	if err := h.shortener.IncrementClicks(urlEntry.ID); err != nil {
		h.logger.Error("click increment failed", "short_url", shortCode, "error", err)
		h.invalidateURLCache(ctx, shortCode)
		c.Redirect(http.StatusFound, "/")
		return
	}

	// 4. Redirect
	c.Redirect(http.StatusFound, urlEntry.OriginalURL)
}
