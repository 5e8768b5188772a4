package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/pgerr"
	"github.com/MadeByDW91/gokartpartpicker/platform/db/pg"
)

const (
	partsTable    = "parts"
	profilesTable = "compatibility_profiles"
)

type repository struct {
	pool *pgxpool.Pool
	tx   *pg.TxManager
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		tx:   pg.NewTxManager(pool),
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the part and its inline profiles in one transaction.
func (r *repository) Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error) {
	const op = "part.repository.Create"

	imageURLs := params.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	var created *model.Part
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := pg.QuerierFromCtx(ctx, r.pool)

		insert := r.sb.
			Insert(partsTable).
			Columns("id", "name", "sku", "brand", "category", "description", "price", "image_urls").
			Values(
				uuid.Must(uuid.NewV7()),
				params.Name,
				params.SKU,
				params.Brand,
				params.Category,
				params.Description,
				params.Price,
				imageURLs,
			).
			Suffix("RETURNING id, name, sku, brand, category, description, price, image_urls, created_at, updated_at")

		sqlStr, args, err := insert.ToSql()
		if err != nil {
			return err
		}

		entity, err := scanPart(q.QueryRow(ctx, sqlStr, args...))
		if err != nil {
			return pgerr.Map(err, model.ErrPartNotFound)
		}

		profiles := make([]model.CompatibilityProfile, 0, len(params.Profiles))
		for _, attrs := range params.Profiles {
			profile, err := InsertProfile(ctx, q, r.sb, model.CreateProfileParams{
				PartID:            entity.ID,
				ProfileAttributes: attrs,
			})
			if err != nil {
				return err
			}
			profiles = append(profiles, profile)
		}

		created = EntityToModel(entity, profiles)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *repository) PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	parts, err := r.PartsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	part, ok := parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return part, nil
}

// PartsByIDs loads the requested parts with their profiles. Unknown ids are absent from the result.
func (r *repository) PartsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Part, error) {
	const op = "part.repository.PartsByIDs"

	result := make(map[uuid.UUID]*model.Part, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := pg.QuerierFromCtx(ctx, r.pool)

	sel := r.sb.
		Select(partColumns...).
		From(partsTable + " p").
		Where(sq.Eq{"p.id": ids})

	entities, err := r.selectParts(ctx, q, sel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profiles, err := r.profilesByPartIDs(ctx, q, entityIDs(entities))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, e := range entities {
		result[e.ID] = EntityToModel(e, profiles[e.ID])
	}

	return result, nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) (model.PartsPage, error) {
	const op = "part.repository.List"

	filter = filter.Normalize()
	page := model.PartsPage{
		Items:    []*model.Part{},
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.EmptyPriceRange() {
		return page, nil
	}

	q := pg.QuerierFromCtx(ctx, r.pool)
	where := BuildPartsWhere(filter)

	countSQL, countArgs, err := r.sb.
		Select("COUNT(*)").
		From(partsTable + " p").
		Where(where).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrPartNotFound))
	}

	offset := filter.Offset()
	if page.Total == 0 || offset >= page.Total {
		return page, nil
	}

	sel := r.sb.
		Select(partColumns...).
		From(partsTable + " p").
		Where(where).
		OrderBy("p.created_at DESC", "p.id ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	entities, err := r.selectParts(ctx, q, sel)
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	profiles, err := r.profilesByPartIDs(ctx, q, entityIDs(entities))
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	for _, e := range entities {
		page.Items = append(page.Items, EntityToModel(e, profiles[e.ID]))
	}

	return page, nil
}

// Delete removes the part. Profiles and build items referencing it go with it via FK cascade.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "part.repository.Delete"

	sqlStr, args, err := r.sb.
		Delete(partsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := pg.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrPartNotFound))
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) selectParts(ctx context.Context, q pg.Querier, sel sq.SelectBuilder) ([]*PartEntity, error) {
	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, pgerr.Map(err, model.ErrPartNotFound)
	}
	defer rows.Close()

	entities := make([]*PartEntity, 0)
	for rows.Next() {
		e, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	return entities, rows.Err()
}

func (r *repository) profilesByPartIDs(
	ctx context.Context,
	q pg.Querier,
	partIDs []uuid.UUID,
) (map[uuid.UUID][]model.CompatibilityProfile, error) {
	result := make(map[uuid.UUID][]model.CompatibilityProfile, len(partIDs))
	if len(partIDs) == 0 {
		return result, nil
	}

	sqlStr, args, err := r.sb.
		Select(ProfileColumns...).
		From(profilesTable).
		Where(sq.Eq{"part_id": partIDs}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, pgerr.Map(err, model.ErrProfileNotFound)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := ScanProfile(rows)
		if err != nil {
			return nil, err
		}
		result[e.PartID] = append(result[e.PartID], ProfileEntityToModel(e))
	}

	return result, rows.Err()
}

// InsertProfile writes one compatibility profile through q, which may be a transaction.
func InsertProfile(
	ctx context.Context,
	q pg.Querier,
	sb sq.StatementBuilderType,
	params model.CreateProfileParams,
) (model.CompatibilityProfile, error) {
	sqlStr, args, err := sb.
		Insert(profilesTable).
		Columns(
			"id",
			"part_id",
			"engine_model",
			"shaft_diameter",
			"bolt_pattern",
			"chain_size",
			"frame_type",
			"notes",
		).
		Values(
			uuid.Must(uuid.NewV7()),
			params.PartID,
			params.EngineModel,
			params.ShaftDiameter,
			params.BoltPattern,
			params.ChainSize,
			params.FrameType,
			params.Notes,
		).
		Suffix("RETURNING " + ProfileReturning).
		ToSql()
	if err != nil {
		return model.CompatibilityProfile{}, err
	}

	e, err := ScanProfile(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return model.CompatibilityProfile{}, pgerr.Map(err, model.ErrProfileNotFound)
	}

	return ProfileEntityToModel(e), nil
}

func entityIDs(entities []*PartEntity) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return ids
}
