package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Species{},
		&models.Stand{},
		&models.Wreath{},
		&models.DeliveryOption{},
		&models.Order{},
		&models.OrderTree{},
		&models.OrderStand{},
		&models.OrderWreath{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func submittableDraft() models.OrderDraft {
	draft := models.OrderDraft{}.
		AddTree(models.TreeItem{
			SpeciesID:    1,
			SpeciesName:  "Noble Fir",
			Fullness:     models.FullnessMedium,
			HeightFeet:   7,
			PricePerFoot: 20,
			UnitPrice:    140,
			Quantity:     1,
		}).
		ToggleOwnStand().
		SetWreathQuantity(models.Wreath{ID: 1, Size: "small", Price: 15}, 1).
		SetDelivery(models.DeliverySelection{OptionID: 1, Name: "Standard", Fee: 25})
	return draft.SetContact(models.Contact{
		FirstName: "Holly",
		LastName:  "Pine",
		Email:     "holly@example.com",
		Phone:     "555-0101",
		Street:    "12 Evergreen Ln",
		City:      "Happy Valley",
		State:     "OR",
		Zip:       "97086",
	})
}

func TestNewOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		assert.True(t, strings.HasPrefix(number, "HV-"))
		assert.Len(t, number, 11)
		assert.Equal(t, strings.ToUpper(number), number)
		assert.False(t, seen[number], "order numbers must not repeat")
		seen[number] = true
	}
}

func TestValidateDraftForSubmit(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(models.OrderDraft) models.OrderDraft
		expectedCode string
	}{
		{
			"complete draft passes",
			func(d models.OrderDraft) models.OrderDraft { return d },
			"",
		},
		{
			"no trees",
			func(d models.OrderDraft) models.OrderDraft {
				d.Trees = nil
				return d
			},
			"EMPTY_ORDER",
		},
		{
			"no delivery",
			func(d models.OrderDraft) models.OrderDraft {
				d.Delivery = nil
				return d
			},
			"MISSING_DELIVERY",
		},
		{
			"incomplete contact",
			func(d models.OrderDraft) models.OrderDraft {
				d.Contact.Email = ""
				return d
			},
			"INCOMPLETE_CONTACT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraftForSubmit(tt.mutate(submittableDraft()))
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			var submitErr *SubmitError
			require.ErrorAs(t, err, &submitErr)
			assert.Equal(t, tt.expectedCode, submitErr.Code)
		})
	}
}

func TestSubmitOrder_OwnStandScenario(t *testing.T) {
	db := setupOrderTestDB(t)
	mock := NewMockNotificationService()
	mock.SetAsMockForTesting()

	order, err := SubmitOrder(db, submittableDraft())
	require.NoError(t, err)

	// One tree at 7ft x $20/ft, own stand, one $15 wreath, $25 delivery
	assert.Equal(t, 180.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "HV-"))

	var treeCount, standCount, wreathCount int64
	db.Model(&models.OrderTree{}).Where("order_id = ?", order.ID).Count(&treeCount)
	db.Model(&models.OrderStand{}).Where("order_id = ?", order.ID).Count(&standCount)
	db.Model(&models.OrderWreath{}).Where("order_id = ?", order.ID).Count(&wreathCount)

	assert.Equal(t, int64(1), treeCount)
	assert.Equal(t, int64(0), standCount, "own stand must not create a line item")
	assert.Equal(t, int64(1), wreathCount)

	// Staff got notified once with the same totals
	sent := mock.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, order.OrderNumber, sent[0].OrderNumber)
	assert.Equal(t, "Holly Pine", sent[0].CustomerName)
	assert.Equal(t, 180.0, sent[0].TotalAmount)
	assert.Equal(t, 25.0, sent[0].DeliveryFee)
}

func TestSubmitOrder_PurchasedStand(t *testing.T) {
	db := setupOrderTestDB(t)
	NewMockNotificationService().SetAsMockForTesting()

	standID := uint(3)
	draft := submittableDraft()
	draft.Stands = []models.StandItem{{
		StandID:   &standID,
		Name:      "Steel Stand",
		UnitPrice: 49.99,
		Quantity:  2,
	}}

	order, err := SubmitOrder(db, draft)
	require.NoError(t, err)
	assert.Equal(t, 279.98, order.TotalAmount)

	var stands []models.OrderStand
	db.Where("order_id = ?", order.ID).Find(&stands)
	require.Len(t, stands, 1)
	require.NotNil(t, stands[0].StandID)
	assert.Equal(t, standID, *stands[0].StandID)
	assert.Equal(t, 2, stands[0].Quantity)
	assert.False(t, stands[0].IsOwnStand)
}

func TestSubmitOrder_InvalidDraft(t *testing.T) {
	db := setupOrderTestDB(t)

	_, err := SubmitOrder(db, models.OrderDraft{})
	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, "EMPTY_ORDER", submitErr.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitOrder_ChildFailureRollsBackHeader(t *testing.T) {
	db := setupOrderTestDB(t)
	NewMockNotificationService().SetAsMockForTesting()

	// Force the tree batch insert to fail
	require.NoError(t, db.Migrator().DropTable(&models.OrderTree{}))

	_, err := SubmitOrder(db, submittableDraft())
	require.Error(t, err)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count, "header must not survive a child insert failure")
}

func TestSubmitOrder_NotificationFailureDoesNotFailOrder(t *testing.T) {
	db := setupOrderTestDB(t)
	mock := NewMockNotificationService()
	mock.FailWith(errors.New("webhook down"))
	mock.SetAsMockForTesting()

	order, err := SubmitOrder(db, submittableDraft())
	require.NoError(t, err)
	assert.NotNil(t, order)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitOrder_OptionalFields(t *testing.T) {
	db := setupOrderTestDB(t)
	NewMockNotificationService().SetAsMockForTesting()

	date := "2026-12-12"
	slot := "morning"
	draft := submittableDraft().SetSchedule(models.Schedule{Date: &date, Time: &slot})
	draft.Contact.Unit = "Apt 4"
	draft.Contact.Notes = "Leave by the garage"

	order, err := SubmitOrder(db, draft)
	require.NoError(t, err)

	require.NotNil(t, order.PreferredDeliveryDate)
	assert.Equal(t, date, *order.PreferredDeliveryDate)
	require.NotNil(t, order.PreferredDeliveryTime)
	assert.Equal(t, slot, *order.PreferredDeliveryTime)
	require.NotNil(t, order.DeliveryUnit)
	assert.Equal(t, "Apt 4", *order.DeliveryUnit)
	require.NotNil(t, order.Notes)
	assert.Equal(t, "Leave by the garage", *order.Notes)
}

func TestFormatDeliveryAddress(t *testing.T) {
	contact := models.Contact{
		Street: "12 Evergreen Ln",
		City:   "Happy Valley",
		State:  "OR",
		Zip:    "97086",
	}
	assert.Equal(t, "12 Evergreen Ln\nHappy Valley, OR 97086", FormatDeliveryAddress(contact))

	contact.Unit = "Apt 4"
	assert.Equal(t, "12 Evergreen Ln\nApt 4\nHappy Valley, OR 97086", FormatDeliveryAddress(contact))
}
