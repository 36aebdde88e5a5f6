package service

import (
	"context"
	"errors"

	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/legacy"
	"github.com/r8r-one/platform/internal/store"
	"go.uber.org/zap"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrVenueRequired  = errors.New("restaurantName is required")
	ErrTitleRequired  = errors.New("burritoTitle is required")
	ErrNoRatingIDs    = errors.New("id list is empty")
)

// RatingService owns the rating lifecycle. Reads are served in the legacy
// flat shape; writes go to the normalized schema.
type RatingService struct {
	ratings domain.RatingStore
	items   domain.ItemStore
	captcha CaptchaVerifier
	logger  *zap.Logger
}

func NewRatingService(ratings domain.RatingStore, items domain.ItemStore, captcha CaptchaVerifier, logger *zap.Logger) *RatingService {
	return &RatingService{
		ratings: ratings,
		items:   items,
		captcha: captcha,
		logger:  logger,
	}
}

// CreateRatingInput mirrors the legacy submission payload.
type CreateRatingInput struct {
	VenueName        string
	ItemName         string
	Latitude         float64
	Longitude        float64
	Zipcode          string
	Scores           map[string]float64
	Price            float64
	Ingredients      []string
	Review           string
	ReviewerName     string
	IdentityPassword string
	ImageFilename    string
	CaptchaToken     string
	RemoteIP         string
}

// Create validates the captcha, derives the reviewer identity, upserts the
// rated item and inserts a pending rating.
func (s *RatingService) Create(ctx context.Context, tenantID string, in CreateRatingInput) (*legacy.Rating, error) {
	if err := s.captcha.Verify(ctx, in.CaptchaToken, in.RemoteIP); err != nil {
		return nil, err
	}
	if in.VenueName == "" {
		return nil, ErrVenueRequired
	}
	if in.ItemName == "" {
		return nil, ErrTitleRequired
	}

	item := &domain.Item{
		TenantID:  tenantID,
		Name:      in.ItemName,
		VenueName: in.VenueName,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Zipcode:   in.Zipcode,
	}
	if err := s.items.Upsert(ctx, item); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		TenantID:    tenantID,
		ItemID:      item.ID,
		Scores:      in.Scores,
		PricePaid:   in.Price,
		Ingredients: in.Ingredients,
		Review:      in.Review,
		Status:      domain.RatingStatusPending,
	}
	if id := GenerateIdentity(in.ReviewerName, in.IdentityPassword); id != nil {
		rating.Reviewer = domain.ReviewerInfo{
			Name:          in.ReviewerName,
			IdentityHash:  id.Hash,
			Emoji:         id.Emoji,
			ImageFilename: in.ImageFilename,
		}
	} else {
		rating.Reviewer = domain.ReviewerInfo{
			Name:          in.ReviewerName,
			ImageFilename: in.ImageFilename,
		}
	}

	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	s.logger.Info("rating created",
		zap.String("tenant_id", tenantID),
		zap.String("rating_id", rating.ID),
		zap.String("item_id", item.ID))

	return legacy.ToLegacyRecord(rating, item)
}

// ListConfirmed returns the tenant's confirmed ratings, newest first, in
// legacy shape. An id that fails legacy projection is a data-integrity
// fault and is returned as an error rather than silently dropped.
func (s *RatingService) ListConfirmed(ctx context.Context, tenantID string) ([]*legacy.Rating, error) {
	rows, err := s.ratings.ListConfirmed(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]*legacy.Rating, 0, len(rows))
	for i := range rows {
		rec, err := legacy.ToLegacyRecord(&rows[i].Rating, &rows[i].Item)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// GetByLegacyID fetches one rating by its numeric legacy id.
func (s *RatingService) GetByLegacyID(ctx context.Context, tenantID string, legacyID int) (*legacy.Rating, error) {
	r, item, err := s.ratings.GetByID(ctx, legacy.FormatLegacyID(legacyID), tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return legacy.ToLegacyRecord(r, item)
}

// Confirm marks a rating confirmed, making it publicly visible.
func (s *RatingService) Confirm(ctx context.Context, tenantID string, legacyID int) error {
	err := s.ratings.UpdateStatus(ctx, legacy.FormatLegacyID(legacyID), tenantID, domain.RatingStatusConfirmed)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRatingNotFound
	}
	return err
}

// ConfirmBulk confirms a batch of ratings and returns how many rows
// changed. Unknown ids are skipped, matching the original bulk endpoint.
func (s *RatingService) ConfirmBulk(ctx context.Context, tenantID string, legacyIDs []int) (int64, error) {
	if len(legacyIDs) == 0 {
		return 0, ErrNoRatingIDs
	}
	ids := make([]string, len(legacyIDs))
	for i, n := range legacyIDs {
		ids[i] = legacy.FormatLegacyID(n)
	}
	return s.ratings.UpdateStatusBulk(ctx, ids, tenantID, domain.RatingStatusConfirmed)
}

// Delete removes a rating.
func (s *RatingService) Delete(ctx context.Context, tenantID string, legacyID int) error {
	err := s.ratings.Delete(ctx, legacy.FormatLegacyID(legacyID), tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRatingNotFound
	}
	return err
}
