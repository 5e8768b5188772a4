package apiv1

import "time"

// CreateBuildRequest takes the label from "label" or, failing that, "userName".
type CreateBuildRequest struct {
	Label    string `json:"label"`
	UserName string `json:"userName,omitempty"`
}

type BuildResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

type BuildViewItemResponse struct {
	ID           string       `json:"id"`
	Part         PartResponse `json:"part"`
	SlotCategory string       `json:"slotCategory"`
	Quantity     int          `json:"quantity"`
}

type BuildViewResponse struct {
	BuildID    string                  `json:"buildId"`
	Label      string                  `json:"label"`
	CreatedAt  time.Time               `json:"createdAt"`
	Items      []BuildViewItemResponse `json:"items"`
	TotalPrice float64                 `json:"totalPrice"`
}

type AddItemRequest struct {
	PartID       string `json:"partId" validate:"required"`
	SlotCategory string `json:"slotCategory" validate:"category"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type CreateBuildItemRequest struct {
	BuildID      string `json:"buildId" validate:"required"`
	PartID       string `json:"partId" validate:"required"`
	SlotCategory string `json:"slotCategory" validate:"category"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type UpdateBuildItemRequest struct {
	BuildID      *string `json:"buildId,omitempty"`
	PartID       *string `json:"partId,omitempty"`
	SlotCategory *string `json:"slotCategory,omitempty" validate:"omitempty,category"`
	Quantity     *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type BuildItemResponse struct {
	ID           string       `json:"id"`
	BuildID      string       `json:"buildId"`
	PartID       string       `json:"partId"`
	SlotCategory string       `json:"slotCategory"`
	Quantity     int          `json:"quantity"`
	Part         PartResponse `json:"part"`
}
