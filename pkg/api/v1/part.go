// Package apiv1 holds the JSON request and response bodies of the HTTP API.
package apiv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompatibilityProfileAttributes struct {
	EngineModel   *string `json:"engineModel,omitempty"`
	ShaftDiameter *string `json:"shaftDiameter,omitempty"`
	BoltPattern   *string `json:"boltPattern,omitempty"`
	ChainSize     *string `json:"chainSize,omitempty"`
	FrameType     *string `json:"frameType,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// CreatePartRequest accepts price as a JSON number or string and keeps it exact.
type CreatePartRequest struct {
	Name                  string                           `json:"name" validate:"notblank"`
	SKU                   string                           `json:"sku" validate:"notblank"`
	Brand                 string                           `json:"brand" validate:"notblank"`
	Category              string                           `json:"category" validate:"category"`
	Description           *string                          `json:"description,omitempty"`
	Price                 *decimal.Decimal                 `json:"price" validate:"required"`
	ImageURLs             []string                         `json:"imageUrls"`
	CompatibilityProfiles []CompatibilityProfileAttributes `json:"compatibilityProfiles" validate:"dive"`
}

type CompatibilityProfileResponse struct {
	ID            string  `json:"id"`
	PartID        string  `json:"partId"`
	EngineModel   *string `json:"engineModel"`
	ShaftDiameter *string `json:"shaftDiameter"`
	BoltPattern   *string `json:"boltPattern"`
	ChainSize     *string `json:"chainSize"`
	FrameType     *string `json:"frameType"`
	Notes         *string `json:"notes"`
}

// PartResponse carries price as a JSON number rounded to cents.
type PartResponse struct {
	ID                    string                         `json:"id"`
	Name                  string                         `json:"name"`
	SKU                   string                         `json:"sku"`
	Brand                 string                         `json:"brand"`
	Category              string                         `json:"category"`
	Description           *string                        `json:"description"`
	Price                 float64                        `json:"price"`
	ImageURLs             []string                       `json:"imageUrls"`
	CreatedAt             time.Time                      `json:"createdAt"`
	UpdatedAt             time.Time                      `json:"updatedAt"`
	CompatibilityProfiles []CompatibilityProfileResponse `json:"compatibilityProfiles"`
}

type PartsListResponse struct {
	Items    []PartResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type CreateProfileRequest struct {
	PartID string `json:"partId" validate:"required"`
	CompatibilityProfileAttributes
}

type UpdateProfileRequest struct {
	PartID *string `json:"partId,omitempty"`
	CompatibilityProfileAttributes
}
