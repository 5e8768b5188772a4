package converter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

// PartToResponse converts the exact price to a JSON number. Digits beyond cents are not representable.
func PartToResponse(p *model.Part) apiv1.PartResponse {
	profiles := make([]apiv1.CompatibilityProfileResponse, 0, len(p.CompatibilityProfiles))
	for i := range p.CompatibilityProfiles {
		profiles = append(profiles, ProfileToResponse(&p.CompatibilityProfiles[i]))
	}

	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return apiv1.PartResponse{
		ID:                    p.ID.String(),
		Name:                  p.Name,
		SKU:                   p.SKU,
		Brand:                 p.Brand,
		Category:              string(p.Category),
		Description:           p.Description,
		Price:                 p.Price.Round(2).InexactFloat64(),
		ImageURLs:             imageURLs,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		CompatibilityProfiles: profiles,
	}
}

func PartsPageToResponse(page model.PartsPage) apiv1.PartsListResponse {
	items := make([]apiv1.PartResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, PartToResponse(p))
	}

	return apiv1.PartsListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func ProfileToResponse(p *model.CompatibilityProfile) apiv1.CompatibilityProfileResponse {
	return apiv1.CompatibilityProfileResponse{
		ID:            p.ID.String(),
		PartID:        p.PartID.String(),
		EngineModel:   p.EngineModel,
		ShaftDiameter: p.ShaftDiameter,
		BoltPattern:   p.BoltPattern,
		ChainSize:     p.ChainSize,
		FrameType:     p.FrameType,
		Notes:         p.Notes,
	}
}

func ProfilesToResponse(profiles []model.CompatibilityProfile) []apiv1.CompatibilityProfileResponse {
	out := make([]apiv1.CompatibilityProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, ProfileToResponse(&profiles[i]))
	}
	return out
}

func CreatePartRequestToParams(req *apiv1.CreatePartRequest) model.CreatePartParams {
	params := model.CreatePartParams{
		Name:        req.Name,
		SKU:         req.SKU,
		Brand:       req.Brand,
		Category:    model.Category(req.Category),
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Profiles:    make([]model.ProfileAttributes, 0, len(req.CompatibilityProfiles)),
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	for _, attrs := range req.CompatibilityProfiles {
		params.Profiles = append(params.Profiles, attributesToModel(attrs))
	}

	return params
}

// CreateProfileRequestToParams fails with model.ErrPartNotFound for a malformed part id.
func CreateProfileRequestToParams(req *apiv1.CreateProfileRequest) (model.CreateProfileParams, error) {
	partID, err := ParseID(req.PartID, model.ErrPartNotFound)
	if err != nil {
		return model.CreateProfileParams{}, err
	}

	return model.CreateProfileParams{
		PartID:            partID,
		ProfileAttributes: attributesToModel(req.CompatibilityProfileAttributes),
	}, nil
}

func UpdateProfileRequestToParams(id uuid.UUID, req *apiv1.UpdateProfileRequest) (model.UpdateProfileParams, error) {
	upd := model.UpdateProfileParams{
		ID:                id,
		ProfileAttributes: attributesToModel(req.CompatibilityProfileAttributes),
	}
	if req.PartID != nil {
		partID, err := ParseID(*req.PartID, model.ErrPartNotFound)
		if err != nil {
			return model.UpdateProfileParams{}, err
		}
		upd.PartID = &partID
	}

	return upd, nil
}

// ParseID returns notFound for anything that is not a UUID: such an id can never resolve.
func ParseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

func attributesToModel(a apiv1.CompatibilityProfileAttributes) model.ProfileAttributes {
	return model.ProfileAttributes{
		EngineModel:   a.EngineModel,
		ShaftDiameter: a.ShaftDiameter,
		BoltPattern:   a.BoltPattern,
		ChainSize:     a.ChainSize,
		FrameType:     a.FrameType,
		Notes:         a.Notes,
	}
}
