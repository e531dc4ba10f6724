package memory

import (
	"context"
	"sync"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository with a process-local
// slice guarded by a mutex. Records live for the lifetime of the process;
// there is no deletion.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
}

// NewCampaignRepository returns an empty in-memory store.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// Save appends the campaign atomically.
func (r *CampaignRepository) Save(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append(r.campaigns, *c)
	return nil
}

// List returns a copy of all campaigns in insertion order.
func (r *CampaignRepository) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

// GetByID returns the campaign with the given id.
func (r *CampaignRepository) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			c := r.campaigns[i]
			return &c, nil
		}
	}
	return nil, port.ErrCampaignNotFound
}

// UpdateStatus sets the status of an existing campaign.
func (r *CampaignRepository) UpdateStatus(_ context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			r.campaigns[i].Status = status
			c := r.campaigns[i]
			return &c, nil
		}
	}
	return nil, port.ErrCampaignNotFound
}
