package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	partrepo "github.com/MadeByDW91/gokartpartpicker/internal/repository/part"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/pgerr"
	"github.com/MadeByDW91/gokartpartpicker/platform/db/pg"
)

const profilesTable = "compatibility_profiles"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewProfileRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, params model.CreateProfileParams) (*model.CompatibilityProfile, error) {
	const op = "profile.repository.Create"

	profile, err := partrepo.InsertProfile(ctx, pg.QuerierFromCtx(ctx, r.pool), r.sb, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}

func (r *repository) ProfileByID(ctx context.Context, id uuid.UUID) (*model.CompatibilityProfile, error) {
	sqlStr, args, err := r.sb.
		Select(partrepo.ProfileColumns...).
		From(profilesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	e, err := partrepo.ScanProfile(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, pgerr.Map(err, model.ErrProfileNotFound)
	}

	profile := partrepo.ProfileEntityToModel(e)
	return &profile, nil
}

// List returns profiles newest first.
func (r *repository) List(ctx context.Context, filter model.ProfilesFilter) ([]model.CompatibilityProfile, error) {
	const op = "profile.repository.List"

	sel := r.sb.
		Select(partrepo.ProfileColumns...).
		From(profilesTable).
		OrderBy("created_at DESC", "id DESC")
	if filter.PartID != nil {
		sel = sel.Where(sq.Eq{"part_id": *filter.PartID})
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := pg.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrProfileNotFound))
	}
	defer rows.Close()

	profiles := make([]model.CompatibilityProfile, 0)
	for rows.Next() {
		e, err := partrepo.ScanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		profiles = append(profiles, partrepo.ProfileEntityToModel(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profiles, nil
}

func (r *repository) Update(ctx context.Context, upd model.UpdateProfileParams) (*model.CompatibilityProfile, error) {
	const op = "profile.repository.Update"

	if upd.Empty() {
		return r.ProfileByID(ctx, upd.ID)
	}

	set := sq.Eq{}
	if upd.PartID != nil {
		set["part_id"] = *upd.PartID
	}
	if upd.EngineModel != nil {
		set["engine_model"] = *upd.EngineModel
	}
	if upd.ShaftDiameter != nil {
		set["shaft_diameter"] = *upd.ShaftDiameter
	}
	if upd.BoltPattern != nil {
		set["bolt_pattern"] = *upd.BoltPattern
	}
	if upd.ChainSize != nil {
		set["chain_size"] = *upd.ChainSize
	}
	if upd.FrameType != nil {
		set["frame_type"] = *upd.FrameType
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	sqlStr, args, err := r.sb.
		Update(profilesTable).
		SetMap(set).
		Where(sq.Eq{"id": upd.ID}).
		Suffix("RETURNING " + partrepo.ProfileReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := partrepo.ScanProfile(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrProfileNotFound))
	}

	profile := partrepo.ProfileEntityToModel(e)
	return &profile, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "profile.repository.Delete"

	sqlStr, args, err := r.sb.
		Delete(profilesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := pg.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}

	return nil
}
