package services

import (
	"errors"
	"time"

	"shortly/internal/models"
	"shortly/pkg/utils"

	"gorm.io/gorm"
)

// ShortCodeLength is the fixed length of generated short tokens.
const ShortCodeLength = 8

// ErrNotFound is returned when no row matches an owner-scoped lookup.
// A missing record and a record owned by someone else are deliberately
// indistinguishable to the caller.
var ErrNotFound = errors.New("url not found or unauthorized")

type ShortenerService struct {
	db            *gorm.DB
	codeGenerator func(int) string
}

func NewShortenerService(db *gorm.DB) *ShortenerService {
	return &ShortenerService{
		db:            db,
		codeGenerator: utils.GenerateShortCode,
	}
}

// Create inserts a new short URL owned by userID. Token collisions are not
// retried here: the unique constraint on short_url rejects the insert and the
// error propagates as a storage failure.
func (s *ShortenerService) Create(userID uint, originalURL string) (*models.URL, error) {
	newURL := models.URL{
		OriginalURL: originalURL,
		ShortURL:    s.codeGenerator(ShortCodeLength),
		UserID:      userID,
		Clicks:      0,
	}

	if err := s.db.Create(&newURL).Error; err != nil {
		return nil, err
	}

	// Re-read so the response carries store-assigned defaults and timestamps.
	var created models.URL
	if err := s.db.First(&created, newURL.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByOwner returns all short URLs owned by userID, newest first.
func (s *ShortenerService) ListByOwner(userID uint) ([]models.URL, error) {
	urls := make([]models.URL, 0)
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

// GetByOwner fetches a single short URL by id, scoped to its owner.
func (s *ShortenerService) GetByOwner(userID, id uint) (*models.URL, error) {
	var url models.URL
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &url, nil
}

// Update replaces the destination of an owned short URL and refreshes
// updated_at. Ownership is enforced by the WHERE predicate itself.
func (s *ShortenerService) Update(userID, id uint, originalURL string) (*models.URL, error) {
	res := s.db.Model(&models.URL{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"original_url": originalURL,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated models.URL
	if err := s.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an owned short URL and returns the removed record so the
// caller can invalidate any cache entry for its token.
func (s *ShortenerService) Delete(userID, id uint) (*models.URL, error) {
	url, err := s.GetByOwner(userID, id)
	if err != nil {
		return nil, err
	}

	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.URL{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return url, nil
}

// FindByShortCode looks up a short URL by its token, for the public redirect
// path. No ownership scoping.
func (s *ShortenerService) FindByShortCode(code string) (*models.URL, error) {
	var url models.URL
	if err := s.db.Where("short_url = ?", code).First(&url).Error; err != nil {
		return nil, err
	}
	return &url, nil
}

// IncrementClicks bumps the click counter by one in a single atomic UPDATE.
// updated_at is left alone: a visit is not an edit.
func (s *ShortenerService) IncrementClicks(id uint) error {
	res := s.db.Model(&models.URL{}).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
