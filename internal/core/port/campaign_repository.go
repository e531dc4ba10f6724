package port

import (
	"context"
	"errors"

	"adwizard/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines the persistence layer for launched campaigns.
// It is an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe: each save is an atomic append and status updates must
// not race with reads.
type CampaignRepository interface {
	// Save stores a new campaign record with its frozen metrics snapshot.
	Save(ctx context.Context, c *domain.Campaign) error
	// List returns all campaigns ordered by creation time, oldest first.
	List(ctx context.Context) ([]domain.Campaign, error)
	// GetByID returns the campaign with the given id, or
	// ErrCampaignNotFound when no such record exists.
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateStatus changes the status of an existing campaign, the only
	// mutation permitted after launch. Returns ErrCampaignNotFound for an
	// unknown id.
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error)
}
