package pgerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Map converts pgx errors to model errors. notFound is returned for pgx.ErrNoRows.
// Context errors pass through unchanged.
func Map(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", model.ErrConflict, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			switch {
			case strings.Contains(pgErr.ConstraintName, "part_id"):
				return model.ErrPartNotFound
			case strings.Contains(pgErr.ConstraintName, "build_id"):
				return model.ErrBuildNotFound
			default:
				return notFound
			}
		case codeCheckViolation:
			return fmt.Errorf("%w: %s", model.ErrValidation, pgErr.ConstraintName)
		}
	}

	return err
}

// LikePattern wraps s for a substring ILIKE match, escaping wildcard characters.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
