package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwizard/internal/core/domain"
	"adwizard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Wizard fields map to columns; the creative and the frozen
// metrics snapshot are stored as JSONB.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, campaign_name, business_name, business_type, goal,
    location, radius, audience_preset, audience_description,
    budget_type, budget_amount, start_date, end_date,
    offer_description, selected_ad_copy, edited_ad_copy, image_url,
    status, created_at, metrics`

// Save inserts a campaign record. The metrics snapshot is written once here
// and never updated afterwards.
func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign) error {
	metricsJSON, err := json.Marshal(c.Metrics)
	if err != nil {
		return err
	}
	selectedJSON, err := marshalAdCopy(c.SelectedAdCopy)
	if err != nil {
		return err
	}
	editedJSON, err := marshalAdCopy(c.EditedAdCopy)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, campaign_name, business_name, business_type, goal,
     location, radius, audience_preset, audience_description,
     budget_type, budget_amount, start_date, end_date,
     offer_description, selected_ad_copy, edited_ad_copy, image_url,
     status, created_at, metrics)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		c.ID, c.CampaignName, c.BusinessName, c.BusinessType, c.Goal,
		c.Location, c.Radius, c.AudiencePreset, c.CustomAudienceDescription,
		c.BudgetType, c.BudgetAmount, c.StartDate, c.EndDate,
		c.OfferDescription, selectedJSON, editedJSON, c.ImageURL,
		c.Status, c.CreatedAt, metricsJSON)
	return err
}

// List returns all campaigns ordered by creation time.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetByID returns a campaign by id, mapping pgx.ErrNoRows to the port's
// sentinel error.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus sets the status of an existing campaign and returns the
// updated record.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, port.ErrCampaignNotFound
	}
	return r.GetByID(ctx, id)
}

func marshalAdCopy(c *domain.AdCopySuggestion) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	var metricsRaw, selectedRaw, editedRaw []byte
	err := row.Scan(
		&c.ID, &c.CampaignName, &c.BusinessName, &c.BusinessType, &c.Goal,
		&c.Location, &c.Radius, &c.AudiencePreset, &c.CustomAudienceDescription,
		&c.BudgetType, &c.BudgetAmount, &c.StartDate, &c.EndDate,
		&c.OfferDescription, &selectedRaw, &editedRaw, &c.ImageURL,
		&c.Status, &c.CreatedAt, &metricsRaw,
	)
	if err != nil {
		return c, err
	}
	if err = json.Unmarshal(metricsRaw, &c.Metrics); err != nil {
		return c, err
	}
	if len(selectedRaw) > 0 {
		c.SelectedAdCopy = new(domain.AdCopySuggestion)
		if err = json.Unmarshal(selectedRaw, c.SelectedAdCopy); err != nil {
			return c, err
		}
	}
	if len(editedRaw) > 0 {
		c.EditedAdCopy = new(domain.AdCopySuggestion)
		if err = json.Unmarshal(editedRaw, c.EditedAdCopy); err != nil {
			return c, err
		}
	}
	return c, nil
}
