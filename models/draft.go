package models

import (
	"github.com/shopspring/decimal"
)

// TreeItem is one configured tree in an in-progress draft. Each add through
// the configurator is a separate configuration decision, so identical
// species/height/fullness combinations still occupy distinct entries.
type TreeItem struct {
	SpeciesID    uint    `json:"species_id"`
	SpeciesName  string  `json:"species_name"`
	Fullness     string  `json:"fullness"`
	HeightFeet   float64 `json:"height_feet"`
	PricePerFoot float64 `json:"price_per_foot"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	FreshCut     bool    `json:"fresh_cut"`
	ImageURL     string  `json:"image_url"`
}

// StandItem is one stand selection in a draft. A nil StandID with HasOwn set
// means the customer brings their own stand at zero cost.
type StandItem struct {
	StandID   *uint   `json:"stand_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	HasOwn    bool    `json:"has_own"`
}

// WreathItem is one wreath selection in a draft, keyed by catalog id.
type WreathItem struct {
	WreathID  uint    `json:"wreath_id"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// DeliverySelection is the chosen delivery service level.
type DeliverySelection struct {
	OptionID uint    `json:"option_id"`
	Name     string  `json:"name"`
	Fee      float64 `json:"fee"`
}

// Schedule holds the customer's preferred delivery slot. Both fields are
// optional; preferences are not guaranteed.
type Schedule struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// Contact holds customer identity and the delivery address.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	Unit      string `json:"unit"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Notes     string `json:"notes"`
}

// Complete reports whether every required contact field is filled in.
func (c Contact) Complete() bool {
	return c.FirstName != "" && c.LastName != "" && c.Email != "" && c.Phone != "" &&
		c.Street != "" && c.City != "" && c.State != "" && c.Zip != ""
}

// OrderDraft accumulates the in-progress order across wizard steps. It is a
// value type: every mutator returns a new draft with fresh slices so a
// half-updated list is never observable.
type OrderDraft struct {
	Trees    []TreeItem         `json:"trees"`
	Stands   []StandItem        `json:"stands"`
	Wreaths  []WreathItem       `json:"wreaths"`
	Delivery *DeliverySelection `json:"delivery"`
	Schedule Schedule           `json:"schedule"`
	Contact  Contact            `json:"contact"`
}

func cloneTrees(in []TreeItem) []TreeItem {
	out := make([]TreeItem, len(in))
	copy(out, in)
	return out
}

func cloneStands(in []StandItem) []StandItem {
	out := make([]StandItem, len(in))
	copy(out, in)
	return out
}

func cloneWreaths(in []WreathItem) []WreathItem {
	out := make([]WreathItem, len(in))
	copy(out, in)
	return out
}

// AddTree appends item as a new distinct entry, even when an identical
// configuration is already present. Quantities below 1 are bumped to 1.
func (d OrderDraft) AddTree(item TreeItem) OrderDraft {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	d.Trees = append(cloneTrees(d.Trees), item)
	return d
}

// SetTreeQuantity replaces the quantity of the tree at index. A quantity of
// zero or less removes the entry. Out-of-range indexes leave the draft
// unchanged.
func (d OrderDraft) SetTreeQuantity(index, quantity int) OrderDraft {
	if index < 0 || index >= len(d.Trees) {
		return d
	}
	if quantity <= 0 {
		return d.RemoveTree(index)
	}
	trees := cloneTrees(d.Trees)
	trees[index].Quantity = quantity
	d.Trees = trees
	return d
}

// RemoveTree drops the tree at index.
func (d OrderDraft) RemoveTree(index int) OrderDraft {
	if index < 0 || index >= len(d.Trees) {
		return d
	}
	trees := make([]TreeItem, 0, len(d.Trees)-1)
	trees = append(trees, d.Trees[:index]...)
	trees = append(trees, d.Trees[index+1:]...)
	d.Trees = trees
	return d
}

// SetStandQuantity sets the quantity for a purchased stand keyed by catalog
// id, adding the entry when absent and removing it at quantity zero or less.
// Any own-stand entry is cleared first; purchased stands and the own-stand
// marker never coexist.
func (d OrderDraft) SetStandQuantity(stand Stand, quantity int) OrderDraft {
	stands := make([]StandItem, 0, len(d.Stands)+1)
	for _, item := range d.Stands {
		if !item.HasOwn {
			stands = append(stands, item)
		}
	}

	if quantity <= 0 {
		filtered := stands[:0]
		for _, item := range stands {
			if item.StandID == nil || *item.StandID != stand.ID {
				filtered = append(filtered, item)
			}
		}
		d.Stands = filtered
		return d
	}

	updated := false
	for i := range stands {
		if stands[i].StandID != nil && *stands[i].StandID == stand.ID {
			stands[i].Quantity = quantity
			updated = true
			break
		}
	}
	if !updated {
		id := stand.ID
		stands = append(stands, StandItem{
			StandID:   &id,
			Name:      stand.Name,
			UnitPrice: stand.Price,
			Quantity:  quantity,
		})
	}
	d.Stands = stands
	return d
}

// ToggleOwnStand switches between the customer's own stand and purchased
// stands. Selecting own-stand clears every purchased entry; deselecting it
// leaves the stand list empty.
func (d OrderDraft) ToggleOwnStand() OrderDraft {
	if d.HasOwnStand() {
		d.Stands = []StandItem{}
		return d
	}
	d.Stands = []StandItem{{
		StandID:   nil,
		Name:      "Own Stand",
		UnitPrice: 0,
		Quantity:  1,
		HasOwn:    true,
	}}
	return d
}

// HasOwnStand reports whether the own-stand marker is present.
func (d OrderDraft) HasOwnStand() bool {
	for _, item := range d.Stands {
		if item.HasOwn {
			return true
		}
	}
	return false
}

// SetWreathQuantity sets the quantity for a wreath keyed by catalog id,
// adding the entry when absent and removing it at quantity zero or less.
func (d OrderDraft) SetWreathQuantity(wreath Wreath, quantity int) OrderDraft {
	if quantity <= 0 {
		wreaths := make([]WreathItem, 0, len(d.Wreaths))
		for _, item := range d.Wreaths {
			if item.WreathID != wreath.ID {
				wreaths = append(wreaths, item)
			}
		}
		d.Wreaths = wreaths
		return d
	}

	wreaths := cloneWreaths(d.Wreaths)
	for i := range wreaths {
		if wreaths[i].WreathID == wreath.ID {
			wreaths[i].Quantity = quantity
			d.Wreaths = wreaths
			return d
		}
	}
	wreaths = append(wreaths, WreathItem{
		WreathID:  wreath.ID,
		Size:      wreath.Size,
		UnitPrice: wreath.Price,
		Quantity:  quantity,
	})
	d.Wreaths = wreaths
	return d
}

// SetDelivery replaces the delivery selection.
func (d OrderDraft) SetDelivery(sel DeliverySelection) OrderDraft {
	d.Delivery = &sel
	return d
}

// SetSchedule replaces the schedule preference.
func (d OrderDraft) SetSchedule(s Schedule) OrderDraft {
	d.Schedule = s
	return d
}

// SetContact replaces the contact block.
func (d OrderDraft) SetContact(c Contact) OrderDraft {
	d.Contact = c
	return d
}

// Totals is the derived price breakdown for a draft. It is never stored;
// review, confirmation, and persistence all recompute it from the same
// function.
type Totals struct {
	TreesSubtotal   float64 `json:"trees_subtotal"`
	StandsSubtotal  float64 `json:"stands_subtotal"`
	WreathsSubtotal float64 `json:"wreaths_subtotal"`
	DeliveryFee     float64 `json:"delivery_fee"`
	GrandTotal      float64 `json:"grand_total"`
}

// TreeUnitPrice computes a tree's unit price as price-per-foot times height.
func TreeUnitPrice(pricePerFoot, heightFeet float64) float64 {
	unit := decimal.NewFromFloat(pricePerFoot).Mul(decimal.NewFromFloat(heightFeet))
	f, _ := unit.Round(2).Float64()
	return f
}

func lineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals derives per-category subtotals and the grand total. Sums are
// accumulated at full precision and rounded to two decimal places only at
// the end, so per-line rounding error cannot compound.
func (d OrderDraft) ComputeTotals() Totals {
	trees := decimal.Zero
	for _, item := range d.Trees {
		trees = trees.Add(lineTotal(item.UnitPrice, item.Quantity))
	}
	stands := decimal.Zero
	for _, item := range d.Stands {
		stands = stands.Add(lineTotal(item.UnitPrice, item.Quantity))
	}
	wreaths := decimal.Zero
	for _, item := range d.Wreaths {
		wreaths = wreaths.Add(lineTotal(item.UnitPrice, item.Quantity))
	}
	fee := decimal.Zero
	if d.Delivery != nil {
		fee = decimal.NewFromFloat(d.Delivery.Fee)
	}
	grand := trees.Add(stands).Add(wreaths).Add(fee)

	round := func(v decimal.Decimal) float64 {
		f, _ := v.Round(2).Float64()
		return f
	}
	return Totals{
		TreesSubtotal:   round(trees),
		StandsSubtotal:  round(stands),
		WreathsSubtotal: round(wreaths),
		DeliveryFee:     round(fee),
		GrandTotal:      round(grand),
	}
}
