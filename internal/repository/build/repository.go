package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/pgerr"
	"github.com/MadeByDW91/gokartpartpicker/platform/db/pg"
)

const (
	buildsTable = "builds"
	itemsTable  = "build_items"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBuildRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) CreateBuild(ctx context.Context, label string) (*model.Build, error) {
	const op = "build.repository.CreateBuild"

	sqlStr, args, err := r.sb.
		Insert(buildsTable).
		Columns("id", "label").
		Values(uuid.Must(uuid.NewV7()), label).
		Suffix("RETURNING " + strings.Join(buildColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := scanBuild(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrBuildNotFound))
	}

	return buildEntityToModel(e), nil
}

func (r *repository) BuildByID(ctx context.Context, id uuid.UUID) (*model.Build, error) {
	sqlStr, args, err := r.sb.
		Select(buildColumns...).
		From(buildsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanBuild(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, pgerr.Map(err, model.ErrBuildNotFound)
	}

	return buildEntityToModel(e), nil
}

// ListBuilds returns every build, newest first.
func (r *repository) ListBuilds(ctx context.Context) ([]model.Build, error) {
	const op = "build.repository.ListBuilds"

	sqlStr, args, err := r.sb.
		Select(buildColumns...).
		From(buildsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := pg.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	builds := make([]model.Build, 0)
	for rows.Next() {
		e, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		builds = append(builds, *buildEntityToModel(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return builds, nil
}

// DeleteBuild removes the build; its items are removed by FK cascade.
func (r *repository) DeleteBuild(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, buildsTable, id, model.ErrBuildNotFound)
}

// AddItem always inserts a new row, even when the same part is already in the build.
func (r *repository) AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error) {
	const op = "build.repository.AddItem"

	sqlStr, args, err := r.sb.
		Insert(itemsTable).
		Columns("id", "build_id", "part_id", "slot_category", "quantity").
		Values(
			uuid.Must(uuid.NewV7()),
			params.BuildID,
			params.PartID,
			params.SlotCategory,
			params.Quantity,
		).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := scanItem(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrBuildItemNotFound))
	}

	item := itemEntityToModel(e)
	return &item, nil
}

func (r *repository) ItemByID(ctx context.Context, id uuid.UUID) (*model.BuildItem, error) {
	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanItem(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, pgerr.Map(err, model.ErrBuildItemNotFound)
	}

	item := itemEntityToModel(e)
	return &item, nil
}

// ListItems returns matching items newest first.
func (r *repository) ListItems(ctx context.Context, filter model.BuildItemsFilter) ([]model.BuildItem, error) {
	const op = "build.repository.ListItems"

	where := sq.Eq{}
	if filter.BuildID != nil {
		where["build_id"] = *filter.BuildID
	}
	if filter.PartID != nil {
		where["part_id"] = *filter.PartID
	}
	if filter.SlotCategory != nil {
		where["slot_category"] = *filter.SlotCategory
	}

	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From(itemsTable).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := pg.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]model.BuildItem, 0)
	for rows.Next() {
		e, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, itemEntityToModel(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (r *repository) UpdateItem(ctx context.Context, upd model.UpdateItemParams) (*model.BuildItem, error) {
	const op = "build.repository.UpdateItem"

	if upd.Empty() {
		return r.ItemByID(ctx, upd.ID)
	}

	set := sq.Eq{}
	if upd.BuildID != nil {
		set["build_id"] = *upd.BuildID
	}
	if upd.PartID != nil {
		set["part_id"] = *upd.PartID
	}
	if upd.SlotCategory != nil {
		set["slot_category"] = *upd.SlotCategory
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
	}

	sqlStr, args, err := r.sb.
		Update(itemsTable).
		SetMap(set).
		Where(sq.Eq{"id": upd.ID}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := scanItem(pg.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, pgerr.Map(err, model.ErrBuildItemNotFound))
	}

	item := itemEntityToModel(e)
	return &item, nil
}

func (r *repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, itemsTable, id, model.ErrBuildItemNotFound)
}

func (r *repository) deleteByID(ctx context.Context, table string, id uuid.UUID, notFound error) error {
	sqlStr, args, err := r.sb.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	ct, err := pg.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if ct.RowsAffected() == 0 {
		return notFound
	}

	return nil
}
