package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draftWithTree() OrderDraft {
	return OrderDraft{}.AddTree(TreeItem{
		SpeciesID:  1,
		HeightFeet: 7,
		UnitPrice:  140,
		Quantity:   1,
	})
}

func TestNextStep(t *testing.T) {
	assert.Equal(t, StepStand, NextStep(StepTree))
	assert.Equal(t, StepDelivery, NextStep(StepStand))
	assert.Equal(t, StepAddons, NextStep(StepDelivery))
	assert.Equal(t, StepSchedule, NextStep(StepAddons))
	assert.Equal(t, StepContact, NextStep(StepSchedule))
	assert.Equal(t, StepReview, NextStep(StepContact))

	// Review is the last navigable step; forward from it is a no-op
	assert.Equal(t, StepReview, NextStep(StepReview))

	// Confirmation sits outside the sequence entirely
	assert.Equal(t, StepConfirmation, NextStep(StepConfirmation))
}

func TestPrevStep(t *testing.T) {
	assert.Equal(t, StepTree, PrevStep(StepStand))
	assert.Equal(t, StepContact, PrevStep(StepReview))

	// Backward from the first step is a no-op
	assert.Equal(t, StepTree, PrevStep(StepTree))

	assert.Equal(t, StepConfirmation, PrevStep(StepConfirmation))
}

func TestCanAdvance(t *testing.T) {
	completeContact := Contact{
		FirstName: "Holly",
		LastName:  "Pine",
		Email:     "holly@example.com",
		Phone:     "555-0101",
		Street:    "12 Evergreen Ln",
		City:      "Happy Valley",
		State:     "OR",
		Zip:       "97086",
	}

	tests := []struct {
		name     string
		step     Step
		draft    OrderDraft
		expected bool
	}{
		{"tree step with empty cart blocks", StepTree, OrderDraft{}, false},
		{"tree step with a tree advances", StepTree, draftWithTree(), true},
		{"stand step never blocks", StepStand, OrderDraft{}, true},
		{"delivery step without selection blocks", StepDelivery, OrderDraft{}, false},
		{
			"delivery step with selection advances",
			StepDelivery,
			OrderDraft{}.SetDelivery(DeliverySelection{OptionID: 1, Name: "Standard", Fee: 25}),
			true,
		},
		{"addons step never blocks", StepAddons, OrderDraft{}, true},
		{"schedule step never blocks", StepSchedule, OrderDraft{}, true},
		{"contact step with missing fields blocks", StepContact, OrderDraft{}, false},
		{
			"contact step with partial fields blocks",
			StepContact,
			OrderDraft{}.SetContact(Contact{FirstName: "Holly", Email: "holly@example.com"}),
			false,
		},
		{
			"contact step with all required fields advances",
			StepContact,
			OrderDraft{}.SetContact(completeContact),
			true,
		},
		{"review step never blocks", StepReview, OrderDraft{}, true},
		{"confirmation never advances", StepConfirmation, draftWithTree(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAdvance(tt.step, tt.draft))
		})
	}
}

func TestContactComplete_OptionalFields(t *testing.T) {
	contact := Contact{
		FirstName: "Holly",
		LastName:  "Pine",
		Email:     "holly@example.com",
		Phone:     "555-0101",
		Street:    "12 Evergreen Ln",
		City:      "Happy Valley",
		State:     "OR",
		Zip:       "97086",
	}

	// Unit and notes are optional
	assert.True(t, contact.Complete())

	contact.Unit = "Apt 4"
	contact.Notes = "Leave by the garage"
	assert.True(t, contact.Complete())

	missing := contact
	missing.Zip = ""
	assert.False(t, missing.Complete())
}
