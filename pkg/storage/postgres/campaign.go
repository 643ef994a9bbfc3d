package postgres

import (
	"context"
	"fmt"
	"outreach/pkg/domain"
	"outreach/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	campaignsTable = "campaigns"
)

func (p *PgSQL) StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	var row PgCampaign
	if err := row.FromDomain(campaign); err != nil {
		return nil, err
	}

	var result PgCampaign
	if _, err := p.Builder.Insert(campaignsTable).
		Rows(row).
		Returning(&PgCampaign{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store campaign into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) CampaignByID(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*domain.Campaign, error) {
	var row PgCampaign
	found, err := p.Builder.From(campaignsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch campaign by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserCampaigns pages through a user's campaigns ordered by created_at DESC, id DESC.
func (p *PgSQL) UserCampaigns(ctx context.Context,
	userID domain.UserID,
	status domain.CampaignStatus,
	cursor *storage.CampaignCursor,
	limit uint) (storage.UserCampaigns, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if cursor != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// one extra row tells whether a next page exists
	var rows []PgCampaign
	if err := p.Builder.From(campaignsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserCampaigns{}, fmt.Errorf("could not fetch user campaigns from pg: %w", err)
	}

	var nextCursor *storage.CampaignCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.CampaignCursor{CreatedAt: last.CreatedAt, ID: domain.CampaignID(last.ID)}
	}

	campaigns, err := pgCampaignsToDomain(rows)
	if err != nil {
		return storage.UserCampaigns{}, err
	}

	return storage.UserCampaigns{
		Campaigns:  campaigns,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) AllUserCampaigns(ctx context.Context, userID domain.UserID) ([]domain.Campaign, error) {
	return p.listCampaigns(ctx, goqu.I("user_id").Eq(uuid.UUID(userID)))
}

func (p *PgSQL) LaunchedCampaigns(ctx context.Context, userID domain.UserID) ([]domain.Campaign, error) {
	return p.listCampaigns(ctx,
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.Or(
			goqu.I("status").Eq(string(domain.CampaignStatusLaunched)),
			goqu.L("doc ->> 'launchedAt' IS NOT NULL"),
		),
	)
}

func (p *PgSQL) listCampaigns(ctx context.Context, where ...goqu.Expression) ([]domain.Campaign, error) {
	var rows []PgCampaign
	if err := p.Builder.From(campaignsTable).
		Where(where...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list campaigns from pg: %w", err)
	}

	return pgCampaignsToDomain(rows)
}

// MergeCampaign applies a shallow JSON merge. Keys set to null in patch are
// stored as null and decode to their zero value.
func (p *PgSQL) MergeCampaign(ctx context.Context,
	userID domain.UserID,
	id domain.CampaignID,
	patch []byte) (*domain.Campaign, error) {
	if !gjson.ValidBytes(patch) || !gjson.ParseBytes(patch).IsObject() {
		return nil, storage.ErrInvalidPatch
	}

	var row PgCampaign
	found, err := p.Builder.Update(campaignsTable).
		Set(goqu.Record{
			"doc":        goqu.L("doc || ?::jsonb", string(patch)),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	).Returning(&PgCampaign{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not merge campaign in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteCampaign hard deletes the campaign; its inbox rows go with it
// through the foreign keys.
func (p *PgSQL) DeleteCampaign(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*domain.Campaign, error) {
	var row PgCampaign
	found, err := p.Builder.Delete(campaignsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgCampaign{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete campaign in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
