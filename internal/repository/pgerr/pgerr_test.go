package pgerr

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

func TestMap(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		notFound error
		want     error
	}{
		{name: "nil stays nil", err: nil, notFound: model.ErrPartNotFound, want: nil},
		{name: "no rows maps to not found", err: pgx.ErrNoRows, notFound: model.ErrBuildNotFound, want: model.ErrBuildNotFound},
		{name: "context errors pass through", err: context.DeadlineExceeded, notFound: model.ErrPartNotFound, want: context.DeadlineExceeded},
		{
			name:     "unique violation maps to conflict",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "parts_sku_key"},
			notFound: model.ErrPartNotFound,
			want:     model.ErrConflict,
		},
		{
			name:     "part foreign key maps to part not found",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "build_items_part_id_fkey"},
			notFound: model.ErrBuildItemNotFound,
			want:     model.ErrPartNotFound,
		},
		{
			name:     "build foreign key maps to build not found",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "build_items_build_id_fkey"},
			notFound: model.ErrBuildItemNotFound,
			want:     model.ErrBuildNotFound,
		},
		{
			name:     "check violation maps to validation",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "build_items_quantity_check"},
			notFound: model.ErrBuildItemNotFound,
			want:     model.ErrValidation,
		},
		{name: "unknown errors pass through", err: dbErr, notFound: model.ErrPartNotFound, want: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Map(tt.err, tt.notFound)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%pred%", LikePattern("pred"))
	assert.Equal(t, `%50\%\_off\\%`, LikePattern(`50%_off\`))
}
