package models

import (
	"time"
)

// Order statuses. Transitions happen only through the admin surface.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCanceled  = "canceled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusFulfilled || s == OrderStatusCanceled
}

// Order represents a submitted customer order in the system
type Order struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	OrderNumber           string    `gorm:"uniqueIndex;not null" json:"order_number"`
	DeliveryOptionID      uint      `gorm:"not null" json:"delivery_option_id"`
	DeliveryFee           float64   `gorm:"not null" json:"delivery_fee"`
	PreferredDeliveryDate *string   `json:"preferred_delivery_date"`
	PreferredDeliveryTime *string   `json:"preferred_delivery_time"`
	CustomerFirstName     string    `gorm:"not null" json:"customer_first_name"`
	CustomerLastName      string    `gorm:"not null" json:"customer_last_name"`
	CustomerEmail         string    `gorm:"not null" json:"customer_email"`
	CustomerPhone         string    `gorm:"not null" json:"customer_phone"`
	DeliveryStreet        string    `gorm:"not null" json:"delivery_street"`
	DeliveryUnit          *string   `json:"delivery_unit"`
	DeliveryCity          string    `gorm:"not null" json:"delivery_city"`
	DeliveryState         string    `gorm:"not null" json:"delivery_state"`
	DeliveryZip           string    `gorm:"not null" json:"delivery_zip"`
	TotalAmount           float64   `gorm:"not null" json:"total_amount"`
	Status                string    `gorm:"not null;default:'pending'" json:"status"` // pending, fulfilled, canceled
	Notes                 *string   `json:"notes"`
	CreatedAt             time.Time `json:"created_at"`

	Trees   []OrderTree   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_trees"`
	Stands  []OrderStand  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_stands"`
	Wreaths []OrderWreath `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_wreaths"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderTree is one configured tree line item on a submitted order
type OrderTree struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"not null;index" json:"order_id"`
	SpeciesID    uint      `gorm:"not null" json:"species_id"`
	Species      *Species  `gorm:"foreignKey:SpeciesID" json:"species,omitempty"`
	FullnessType string    `gorm:"not null" json:"fullness_type"`
	HeightFeet   float64   `gorm:"not null" json:"height_feet"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price"`
	Quantity     int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	FreshCut     bool      `gorm:"not null;default:false" json:"fresh_cut"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderTree model
func (OrderTree) TableName() string {
	return "order_trees"
}

// OrderStand is one stand line item on a submitted order. A nil StandID with
// IsOwnStand set records that the customer supplies their own stand.
type OrderStand struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	StandID    *uint     `json:"stand_id"`
	Stand      *Stand    `gorm:"foreignKey:StandID" json:"stand,omitempty"`
	UnitPrice  float64   `gorm:"not null" json:"unit_price"`
	Quantity   int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	IsOwnStand bool      `gorm:"not null;default:false" json:"is_own_stand"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderStand model
func (OrderStand) TableName() string {
	return "order_stands"
}

// OrderWreath is one wreath line item on a submitted order
type OrderWreath struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	WreathID  uint      `gorm:"not null" json:"wreath_id"`
	Wreath    *Wreath   `gorm:"foreignKey:WreathID" json:"wreath,omitempty"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Quantity  int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderWreath model
func (OrderWreath) TableName() string {
	return "order_wreaths"
}
