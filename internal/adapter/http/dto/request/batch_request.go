package request

import (
	"strings"
	"time"

	"agritrade/internal/domain/entities"
)

// CreateBatchRequest is the farmer-facing payload for registering a harvested
// lot.
type CreateBatchRequest struct {
	BatchID     string    `json:"batch_id" binding:"required"`
	CropType    string    `json:"crop_type" binding:"required"`
	HarvestDate time.Time `json:"harvest_date"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	Quantity    int       `json:"quantity" binding:"required,gt=0"`
	PricePerKg  float64   `json:"price_per_kg" binding:"required,gt=0"`
}

func (r CreateBatchRequest) ToInput() entities.NewBatchInput {
	return entities.NewBatchInput{
		BatchID:     strings.TrimSpace(r.BatchID),
		CropType:    strings.TrimSpace(r.CropType),
		HarvestDate: r.HarvestDate,
		Location:    strings.TrimSpace(r.Location),
		Images:      r.Images,
		Quantity:    r.Quantity,
		PricePerKg:  r.PricePerKg,
	}
}
