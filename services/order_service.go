package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

// SubmitError represents an order-submission failure with a stable code
type SubmitError struct {
	Code    string
	Message string
}

func (e *SubmitError) Error() string {
	return e.Message
}

// NewOrderNumber generates a server-assigned order number. The customer only
// ever sees this, never the row id.
func NewOrderNumber() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return "HV-" + fragment
}

// ValidateDraftForSubmit checks that the draft satisfies every gate the
// wizard enforces on the way to the review step. It guards against drafts
// that reached submission through a stale session.
func ValidateDraftForSubmit(draft models.OrderDraft) error {
	if len(draft.Trees) == 0 {
		return &SubmitError{Code: "EMPTY_ORDER", Message: "At least one tree is required"}
	}
	if draft.Delivery == nil {
		return &SubmitError{Code: "MISSING_DELIVERY", Message: "A delivery option must be selected"}
	}
	if !draft.Contact.Complete() {
		return &SubmitError{Code: "INCOMPLETE_CONTACT", Message: "Contact and delivery address are incomplete"}
	}
	return nil
}

// SubmitOrder turns a finalized draft into persisted records and notifies
// staff. The header is inserted first so the database assigns an order id;
// the three child batches are then inserted concurrently and all awaited.
// If any child batch fails the header is deleted again on a best-effort
// basis so no line-item-less order is left behind, and a single error is
// returned. The notification is fired last and never blocks confirmation.
func SubmitOrder(db *gorm.DB, draft models.OrderDraft) (*models.Order, error) {
	if err := ValidateDraftForSubmit(draft); err != nil {
		return nil, err
	}

	totals := draft.ComputeTotals()

	order := models.Order{
		OrderNumber:           NewOrderNumber(),
		DeliveryOptionID:      draft.Delivery.OptionID,
		DeliveryFee:           draft.Delivery.Fee,
		PreferredDeliveryDate: draft.Schedule.Date,
		PreferredDeliveryTime: draft.Schedule.Time,
		CustomerFirstName:     draft.Contact.FirstName,
		CustomerLastName:      draft.Contact.LastName,
		CustomerEmail:         draft.Contact.Email,
		CustomerPhone:         draft.Contact.Phone,
		DeliveryStreet:        draft.Contact.Street,
		DeliveryCity:          draft.Contact.City,
		DeliveryState:         draft.Contact.State,
		DeliveryZip:           draft.Contact.Zip,
		TotalAmount:           totals.GrandTotal,
		Status:                models.OrderStatusPending,
	}
	if draft.Contact.Unit != "" {
		unit := draft.Contact.Unit
		order.DeliveryUnit = &unit
	}
	if draft.Contact.Notes != "" {
		notes := draft.Contact.Notes
		order.Notes = &notes
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	var g errgroup.Group

	if len(draft.Trees) > 0 {
		trees := make([]models.OrderTree, 0, len(draft.Trees))
		for _, item := range draft.Trees {
			trees = append(trees, models.OrderTree{
				OrderID:      order.ID,
				SpeciesID:    item.SpeciesID,
				FullnessType: item.Fullness,
				HeightFeet:   item.HeightFeet,
				UnitPrice:    item.UnitPrice,
				Quantity:     item.Quantity,
				FreshCut:     item.FreshCut,
			})
		}
		g.Go(func() error {
			return db.Create(&trees).Error
		})
	}

	// Own-stand entries are a zero-cost marker in the draft only; they do not
	// become line items.
	stands := make([]models.OrderStand, 0, len(draft.Stands))
	for _, item := range draft.Stands {
		if item.HasOwn {
			continue
		}
		stands = append(stands, models.OrderStand{
			OrderID:   order.ID,
			StandID:   item.StandID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	if len(stands) > 0 {
		g.Go(func() error {
			return db.Create(&stands).Error
		})
	}

	if len(draft.Wreaths) > 0 {
		wreaths := make([]models.OrderWreath, 0, len(draft.Wreaths))
		for _, item := range draft.Wreaths {
			wreaths = append(wreaths, models.OrderWreath{
				OrderID:   order.ID,
				WreathID:  item.WreathID,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
		g.Go(func() error {
			return db.Create(&wreaths).Error
		})
	}

	if err := g.Wait(); err != nil {
		// Compensating delete so a header without line items is not left
		// behind. If this also fails there is nothing more to do than log.
		compensate(db, order.ID)
		return nil, fmt.Errorf("failed to save order items: %w", err)
	}

	sendNotification(order, draft)

	return &order, nil
}

func compensate(db *gorm.DB, orderID uint) {
	for _, del := range []error{
		db.Where("order_id = ?", orderID).Delete(&models.OrderTree{}).Error,
		db.Where("order_id = ?", orderID).Delete(&models.OrderStand{}).Error,
		db.Where("order_id = ?", orderID).Delete(&models.OrderWreath{}).Error,
		db.Delete(&models.Order{}, orderID).Error,
	} {
		if del != nil {
			log.Printf("warning: failed to roll back partial order %d: %v", orderID, del)
		}
	}
}

// sendNotification fires the staff notification. Failures are logged only;
// the customer's confirmation never depends on it.
func sendNotification(order models.Order, draft models.OrderDraft) {
	service := GetNotificationService()
	if service == nil {
		log.Printf("Notification service not initialized, skipping notification for order %s", order.OrderNumber)
		return
	}

	notification := OrderNotification{
		OrderNumber:     order.OrderNumber,
		CustomerName:    draft.Contact.FirstName + " " + draft.Contact.LastName,
		CustomerEmail:   draft.Contact.Email,
		CustomerPhone:   draft.Contact.Phone,
		DeliveryAddress: FormatDeliveryAddress(draft.Contact),
		DeliveryDate:    valueOr(draft.Schedule.Date, "Not specified"),
		DeliveryTime:    valueOr(draft.Schedule.Time, "Not specified"),
		Trees:           draft.Trees,
		Stands:          draft.Stands,
		Wreaths:         draft.Wreaths,
		DeliveryOption:  draft.Delivery.Name,
		DeliveryFee:     order.DeliveryFee,
		TotalAmount:     order.TotalAmount,
		Notes:           draft.Contact.Notes,
	}

	if err := service.SendOrderNotification(notification); err != nil {
		log.Printf("Failed to send notification for order %s: %v", order.OrderNumber, err)
	}
}

// FormatDeliveryAddress renders the contact block as a multi-line postal
// address, skipping the unit line when empty.
func FormatDeliveryAddress(c models.Contact) string {
	lines := []string{c.Street}
	if c.Unit != "" {
		lines = append(lines, c.Unit)
	}
	lines = append(lines, fmt.Sprintf("%s, %s %s", c.City, c.State, c.Zip))
	return strings.Join(lines, "\n")
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
