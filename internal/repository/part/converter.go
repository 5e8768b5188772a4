package repository

import (
	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

func EntityToModel(e *PartEntity, profiles []model.CompatibilityProfile) *model.Part {
	if e == nil {
		return nil
	}

	imageURLs := e.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	if profiles == nil {
		profiles = []model.CompatibilityProfile{}
	}

	return &model.Part{
		ID:                    e.ID,
		Name:                  e.Name,
		SKU:                   e.SKU,
		Brand:                 e.Brand,
		Category:              e.Category,
		Description:           e.Description,
		Price:                 e.Price,
		ImageURLs:             imageURLs,
		CompatibilityProfiles: profiles,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func ProfileEntityToModel(e *ProfileEntity) model.CompatibilityProfile {
	return model.CompatibilityProfile{
		ID:            e.ID,
		PartID:        e.PartID,
		EngineModel:   e.EngineModel,
		ShaftDiameter: e.ShaftDiameter,
		BoltPattern:   e.BoltPattern,
		ChainSize:     e.ChainSize,
		FrameType:     e.FrameType,
		Notes:         e.Notes,
	}
}
