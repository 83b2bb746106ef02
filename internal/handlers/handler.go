package handlers

import (
	"context"
	"log/slog"
	"time"

	"shortly/internal/config"
	"shortly/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const urlCacheTTL = 10 * time.Minute

type Handler struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *gorm.DB
	rdb       *redis.Client
	shortener *services.ShortenerService
	sessions  *services.SessionService
	qr        *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	shortener *services.ShortenerService,
	sessions *services.SessionService,
	qr *services.QRService,
) *Handler {
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		rdb:       rdb,
		shortener: shortener,
		sessions:  sessions,
		qr:        qr,
	}
}

func urlCacheKey(code string) string {
	return "url:" + code
}

// invalidateURLCache drops the cached record for a short token. The cache is
// optional; a nil client means no cache is configured.
func (h *Handler) invalidateURLCache(ctx context.Context, code string) {
	if h.rdb != nil {
		h.rdb.Del(ctx, urlCacheKey(code))
	}
}
