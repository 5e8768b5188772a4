package converter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

// PartsQueryToFilter reads catalog query parameters. Unparsable page values fall back
// to the defaults; unparsable prices are rejected.
func PartsQueryToFilter(q url.Values) (model.PartsFilter, error) {
	f := model.PartsFilter{
		Q:           q.Get("q"),
		Category:    q.Get("category"),
		Brand:       q.Get("brand"),
		EngineModel: q.Get("engine_model"),
		ChainSize:   q.Get("chain_size"),
		Page:        atoiOr(q.Get("page"), model.DefaultPage),
		PageSize:    atoiOr(q.Get("page_size"), model.DefaultPageSize),
	}

	var errs []model.FieldError
	for _, bound := range []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"price_min", &f.PriceMin},
		{"price_max", &f.PriceMax},
	} {
		raw := strings.TrimSpace(q.Get(bound.name))
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, model.FieldError{Field: bound.name, Message: "must be a number"})
			continue
		}
		*bound.dst = &d
	}

	if len(errs) > 0 {
		return model.PartsFilter{}, model.NewValidationErrors(errs)
	}
	return f.Normalize(), nil
}

// BuildItemsQueryToFilter reads optional equality filters. A malformed id yields a filter
// that matches nothing.
func BuildItemsQueryToFilter(q url.Values) (model.BuildItemsFilter, bool) {
	var f model.BuildItemsFilter

	if raw := q.Get("buildId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, false
		}
		f.BuildID = &id
	}
	if raw := q.Get("partId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, false
		}
		f.PartID = &id
	}
	if raw := q.Get("slotCategory"); raw != "" {
		slot := model.Category(raw)
		f.SlotCategory = &slot
	}

	return f, true
}

func ProfilesQueryToFilter(q url.Values) (model.ProfilesFilter, bool) {
	var f model.ProfilesFilter

	if raw := q.Get("partId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, false
		}
		f.PartID = &id
	}

	return f, true
}

func atoiOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
