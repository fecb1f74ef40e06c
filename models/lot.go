package models

import (
	"time"

	"github.com/google/uuid"
)

// CropType classifies the crop grown in a lot.
type CropType string

const (
	CropTypeGrain     CropType = "grain"
	CropTypeVegetable CropType = "vegetable"
	CropTypeFruit     CropType = "fruit"
	CropTypeOther     CropType = "other"
)

// LotStatus is the lifecycle state of a harvest batch.
type LotStatus string

const (
	LotStatusRegistered LotStatus = "registered"
	LotStatusInProgress LotStatus = "in_progress"
	LotStatusHarvested  LotStatus = "harvested"
	LotStatusCompleted  LotStatus = "completed"
	LotStatusCancelled  LotStatus = "cancelled"
)

// Point is a geographic coordinate pair (longitude/latitude).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lot represents a harvest batch registered by a producer. Traceability
// events reference a lot by ID.
type Lot struct {
	ID                    uuid.UUID  `json:"id"`
	ProducerID            uuid.UUID  `json:"producer_id"`
	LotCode               string     `json:"lot_code"`
	ProductName           string     `json:"product_name"`
	CropType              CropType   `json:"crop_type"`
	EstimatedQuantity     float64    `json:"estimated_quantity"`
	UnitOfMeasure         string     `json:"unit_of_measure"`
	EstimatedHarvestDate  time.Time  `json:"estimated_harvest_date"`
	ActualHarvestDate     *time.Time `json:"actual_harvest_date,omitempty"`
	CurrentStatus         LotStatus  `json:"current_status"`
	AdditionalDescription *string    `json:"additional_description,omitempty"`
	LocationCoordinates   *Point     `json:"location_coordinates,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Lot model.
func (l Lot) TableName() string {
	return "lots"
}

// LotUpdate describes a partial update of a lot. Nil fields are left
// unchanged.
type LotUpdate struct {
	ProductName           *string    `json:"product_name,omitempty"`
	CropType              *CropType  `json:"crop_type,omitempty"`
	EstimatedQuantity     *float64   `json:"estimated_quantity,omitempty"`
	UnitOfMeasure         *string    `json:"unit_of_measure,omitempty"`
	EstimatedHarvestDate  *time.Time `json:"estimated_harvest_date,omitempty"`
	ActualHarvestDate     *time.Time `json:"actual_harvest_date,omitempty"`
	CurrentStatus         *LotStatus `json:"current_status,omitempty"`
	AdditionalDescription *string    `json:"additional_description,omitempty"`
	LocationCoordinates   *Point     `json:"location_coordinates,omitempty"`
}

// LotFilter narrows lot list queries. Zero-valued fields are not applied.
type LotFilter struct {
	ProducerID  uuid.UUID
	ProductName string
	Status      LotStatus
	CropType    CropType
	Page        int64
	PerPage     int64
}
