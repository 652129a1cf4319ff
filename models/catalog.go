package models

import (
	"time"
)

// Fullness tiers for a tree species. Every species carries exactly one
// variant per tier.
const (
	FullnessThin   = "thin"
	FullnessMedium = "medium"
	FullnessFull   = "full"
)

// FullnessTiers lists the tiers in display order.
var FullnessTiers = []string{FullnessThin, FullnessMedium, FullnessFull}

// Species represents a tree species offered in the storefront
type Species struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	Visible     bool      `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Species model
func (Species) TableName() string {
	return "species"
}

// FullnessVariant is one density grade of a species with its own
// price-per-foot and reference image
type FullnessVariant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SpeciesID    uint      `gorm:"not null;index" json:"species_id"`
	FullnessType string    `gorm:"not null" json:"fullness_type"` // thin, medium, full
	ImageURL     string    `json:"image_url"`
	ImageS3Key   *string   `json:"image_s3_key,omitempty"` // set when the image lives in S3
	PricePerFoot float64   `gorm:"not null;default:0" json:"price_per_foot"`
	Available    bool      `gorm:"not null;default:false" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the FullnessVariant model
func (FullnessVariant) TableName() string {
	return "fullness_variants"
}

// SpeciesHeight is an available selling height for a species
type SpeciesHeight struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SpeciesID    uint      `gorm:"not null;index" json:"species_id"`
	HeightFeet   float64   `gorm:"not null" json:"height_feet"`
	PricePerFoot float64   `gorm:"not null;default:0" json:"price_per_foot"`
	Available    bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the SpeciesHeight model
func (SpeciesHeight) TableName() string {
	return "species_heights"
}

// Stand represents a purchasable tree stand
type Stand struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	FitsUpToFeet *float64  `json:"fits_up_to_feet"`
	Visible      bool      `gorm:"not null;default:true" json:"visible"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Stand model
func (Stand) TableName() string {
	return "stands"
}

// Wreath represents a wreath add-on offered alongside trees
type Wreath struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Size        string    `gorm:"not null" json:"size"` // small, medium, large
	Description *string   `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Visible     bool      `gorm:"not null;default:true" json:"visible"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Wreath model
func (Wreath) TableName() string {
	return "wreaths"
}

// DeliveryOption represents a delivery service level with a flat fee
type DeliveryOption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	Fee         float64   `gorm:"not null" json:"fee"`
	Visible     bool      `gorm:"not null;default:true" json:"visible"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the DeliveryOption model
func (DeliveryOption) TableName() string {
	return "delivery_options"
}
