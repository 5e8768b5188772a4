package repository

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/pgerr"
)

// BuildPartsWhere translates a catalog filter into a predicate over "parts p".
// Profile filters must be satisfied by one and the same profile row.
func BuildPartsWhere(f model.PartsFilter) sq.And {
	where := sq.And{}

	if f.Q != "" {
		pattern := pgerr.LikePattern(f.Q)
		where = append(where, sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.brand": pattern},
			sq.ILike{"p.sku": pattern},
		})
	}
	if f.Category != "" {
		where = append(where, sq.Eq{"p.category": f.Category})
	}
	if f.Brand != "" {
		where = append(where, sq.ILike{"p.brand": pgerr.LikePattern(f.Brand)})
	}
	if f.PriceMin != nil {
		where = append(where, sq.GtOrEq{"p.price": f.PriceMin.String()})
	}
	if f.PriceMax != nil {
		where = append(where, sq.LtOrEq{"p.price": f.PriceMax.String()})
	}

	if f.EngineModel != "" || f.ChainSize != "" {
		profileWhere := sq.And{sq.Expr("cp.part_id = p.id")}
		if f.EngineModel != "" {
			profileWhere = append(profileWhere, sq.ILike{"cp.engine_model": pgerr.LikePattern(f.EngineModel)})
		}
		if f.ChainSize != "" {
			profileWhere = append(profileWhere, sq.Eq{"cp.chain_size": f.ChainSize})
		}

		where = append(where, sq.Expr(
			"EXISTS (?)",
			sq.Select("1").From("compatibility_profiles cp").Where(profileWhere),
		))
	}

	return where
}
