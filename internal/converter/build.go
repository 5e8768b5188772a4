package converter

import (
	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

func BuildToResponse(b *model.Build) apiv1.BuildResponse {
	return apiv1.BuildResponse{
		ID:        b.ID.String(),
		Label:     b.Label,
		CreatedAt: b.CreatedAt,
	}
}

func BuildsToResponse(builds []model.Build) []apiv1.BuildResponse {
	out := make([]apiv1.BuildResponse, 0, len(builds))
	for i := range builds {
		out = append(out, BuildToResponse(&builds[i]))
	}
	return out
}

func BuildViewToResponse(v *model.BuildView) apiv1.BuildViewResponse {
	items := make([]apiv1.BuildViewItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, apiv1.BuildViewItemResponse{
			ID:           it.ID.String(),
			Part:         PartToResponse(it.Part),
			SlotCategory: string(it.SlotCategory),
			Quantity:     it.Quantity,
		})
	}

	return apiv1.BuildViewResponse{
		BuildID:    v.ID.String(),
		Label:      v.Label,
		CreatedAt:  v.CreatedAt,
		Items:      items,
		TotalPrice: v.TotalPrice.Round(2).InexactFloat64(),
	}
}

func BuildItemToResponse(it *model.BuildItem) apiv1.BuildItemResponse {
	resp := apiv1.BuildItemResponse{
		ID:           it.ID.String(),
		BuildID:      it.BuildID.String(),
		PartID:       it.PartID.String(),
		SlotCategory: string(it.SlotCategory),
		Quantity:     it.Quantity,
	}
	if it.Part != nil {
		resp.Part = PartToResponse(it.Part)
	}
	return resp
}

func BuildItemsToResponse(items []model.BuildItem) []apiv1.BuildItemResponse {
	out := make([]apiv1.BuildItemResponse, 0, len(items))
	for i := range items {
		out = append(out, BuildItemToResponse(&items[i]))
	}
	return out
}

func CreateBuildRequestLabel(req *apiv1.CreateBuildRequest) string {
	if req.Label != "" {
		return req.Label
	}
	return req.UserName
}

// AddItemRequestToParams defaults a missing quantity to 1.
func AddItemRequestToParams(buildID uuid.UUID, req *apiv1.AddItemRequest) (model.AddItemParams, error) {
	partID, err := ParseID(req.PartID, model.ErrPartNotFound)
	if err != nil {
		return model.AddItemParams{}, err
	}

	return model.AddItemParams{
		BuildID:      buildID,
		PartID:       partID,
		SlotCategory: model.Category(req.SlotCategory),
		Quantity:     quantityOrDefault(req.Quantity),
	}, nil
}

func CreateBuildItemRequestToParams(req *apiv1.CreateBuildItemRequest) (model.AddItemParams, error) {
	buildID, err := ParseID(req.BuildID, model.ErrBuildNotFound)
	if err != nil {
		return model.AddItemParams{}, err
	}

	return AddItemRequestToParams(buildID, &apiv1.AddItemRequest{
		PartID:       req.PartID,
		SlotCategory: req.SlotCategory,
		Quantity:     req.Quantity,
	})
}

func UpdateBuildItemRequestToParams(id uuid.UUID, req *apiv1.UpdateBuildItemRequest) (model.UpdateItemParams, error) {
	upd := model.UpdateItemParams{
		ID:       id,
		Quantity: req.Quantity,
	}

	if req.BuildID != nil {
		buildID, err := ParseID(*req.BuildID, model.ErrBuildNotFound)
		if err != nil {
			return model.UpdateItemParams{}, err
		}
		upd.BuildID = &buildID
	}
	if req.PartID != nil {
		partID, err := ParseID(*req.PartID, model.ErrPartNotFound)
		if err != nil {
			return model.UpdateItemParams{}, err
		}
		upd.PartID = &partID
	}
	if req.SlotCategory != nil {
		slot := model.Category(*req.SlotCategory)
		upd.SlotCategory = &slot
	}

	return upd, nil
}

func quantityOrDefault(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}
