package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
	"github.com/Jevohngg/happy-valley-tree-orders/services"
)

// CheckoutSessionResponse is the wire form of a checkout session. Totals are
// recomputed from the draft on every read so the client never sees a stale
// price.
type CheckoutSessionResponse struct {
	Token       string            `json:"token"`
	Step        models.Step       `json:"step"`
	Draft       models.OrderDraft `json:"draft"`
	Totals      models.Totals     `json:"totals"`
	OrderNumber string            `json:"order_number,omitempty"`
	Submitted   bool              `json:"submitted"`
}

func sessionResponse(session services.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		Token:       session.Token,
		Step:        session.Step,
		Draft:       session.Draft,
		Totals:      session.Draft.ComputeTotals(),
		OrderNumber: session.OrderNumber,
		Submitted:   session.Submitted,
	}
}

func sessionError(c *gin.Context, err error) {
	var sessErr *services.SessionError
	if errors.As(err, &sessErr) {
		status := http.StatusNotFound
		switch sessErr {
		case services.ErrAlreadySubmitted, services.ErrSubmitInProgress:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    sessErr.Code,
				"message": sessErr.Message,
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Something went wrong",
		},
	})
}

// CreateCheckoutSession handles POST /api/v1/checkout/sessions - starts a new
// wizard session with an empty draft at the tree step
func CreateCheckoutSession(c *gin.Context) {
	session := services.GetDraftStore().Create()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// GetCheckoutSession handles GET /api/v1/checkout/sessions/:token
func GetCheckoutSession(c *gin.Context) {
	session, err := services.GetDraftStore().Get(c.Param("token"))
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// AdvanceStep handles POST /api/v1/checkout/sessions/:token/next - moves the
// wizard one step forward when the current step's gate passes
func AdvanceStep(c *gin.Context) {
	store := services.GetDraftStore()
	token := c.Param("token")

	session, err := store.Get(token)
	if err != nil {
		sessionError(c, err)
		return
	}

	if !models.CanAdvance(session.Step, session.Draft) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STEP_INCOMPLETE",
				"message": "The current step is not complete",
			},
		})
		return
	}

	session, err = store.SetStep(token, models.NextStep(session.Step))
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// StepBack handles POST /api/v1/checkout/sessions/:token/back - moves the
// wizard one step back. Backward moves are never gated.
func StepBack(c *gin.Context) {
	store := services.GetDraftStore()
	token := c.Param("token")

	session, err := store.Get(token)
	if err != nil {
		sessionError(c, err)
		return
	}

	session, err = store.SetStep(token, models.PrevStep(session.Step))
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// AddTreeRequest configures one tree to add to the cart
type AddTreeRequest struct {
	SpeciesID  uint    `json:"species_id" binding:"required"`
	Fullness   string  `json:"fullness" binding:"required"`
	HeightFeet float64 `json:"height_feet" binding:"required,gt=0"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	FreshCut   bool    `json:"fresh_cut"`
}

// AddTree handles POST /api/v1/checkout/sessions/:token/trees - adds a
// configured tree as a new distinct cart entry. The unit price is computed
// server-side from the chosen variant's price-per-foot and the height, never
// taken from the client.
func AddTree(c *gin.Context) {
	var req AddTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	var species models.Species
	if err := db.Where("visible = ?", true).First(&species, req.SpeciesID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SPECIES_NOT_FOUND",
				"message": "Species not found",
			},
		})
		return
	}

	var variant models.FullnessVariant
	if err := db.Where("species_id = ? AND fullness_type = ? AND available = ?",
		species.ID, req.Fullness, true).First(&variant).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VARIANT_UNAVAILABLE",
				"message": "That fullness is not available for this species",
			},
		})
		return
	}

	var height models.SpeciesHeight
	if err := db.Where("species_id = ? AND height_feet = ? AND available = ?",
		species.ID, req.HeightFeet, true).First(&height).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HEIGHT_UNAVAILABLE",
				"message": "That height is not available for this species",
			},
		})
		return
	}

	item := models.TreeItem{
		SpeciesID:    species.ID,
		SpeciesName:  species.Name,
		Fullness:     variant.FullnessType,
		HeightFeet:   req.HeightFeet,
		PricePerFoot: variant.PricePerFoot,
		UnitPrice:    models.TreeUnitPrice(variant.PricePerFoot, req.HeightFeet),
		Quantity:     req.Quantity,
		FreshCut:     req.FreshCut,
		ImageURL:     variant.ImageURL,
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.AddTree(item)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetQuantityRequest carries a replacement quantity. Zero or less removes the
// entry, so the field is not required.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateTreeQuantity handles PUT /api/v1/checkout/sessions/:token/trees/:index
func UpdateTreeQuantity(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetTreeQuantity(index, req.Quantity)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// RemoveTreeFromCart handles DELETE /api/v1/checkout/sessions/:token/trees/:index
func RemoveTreeFromCart(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.RemoveTree(index)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetStandRequest selects a purchased stand quantity
type SetStandRequest struct {
	StandID  uint `json:"stand_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// SetStandSelection handles PUT /api/v1/checkout/sessions/:token/stands -
// sets the quantity for one purchased stand, clearing any own-stand marker
func SetStandSelection(c *gin.Context) {
	var req SetStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var stand models.Stand
	if err := db.Where("visible = ?", true).First(&stand, req.StandID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STAND_NOT_FOUND",
				"message": "Stand not found",
			},
		})
		return
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetStandQuantity(stand, req.Quantity)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// ToggleOwnStand handles POST /api/v1/checkout/sessions/:token/stands/own -
// flips the own-stand marker, clearing purchased stands when turned on
func ToggleOwnStand(c *gin.Context) {
	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.ToggleOwnStand()
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetWreathRequest selects a wreath quantity
type SetWreathRequest struct {
	WreathID uint `json:"wreath_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// SetWreathSelection handles PUT /api/v1/checkout/sessions/:token/wreaths
func SetWreathSelection(c *gin.Context) {
	var req SetWreathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var wreath models.Wreath
	if err := db.Where("visible = ?", true).First(&wreath, req.WreathID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "WREATH_NOT_FOUND",
				"message": "Wreath not found",
			},
		})
		return
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetWreathQuantity(wreath, req.Quantity)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetDeliveryRequest selects a delivery option
type SetDeliveryRequest struct {
	OptionID uint `json:"option_id" binding:"required"`
}

// SetDeliverySelection handles PUT /api/v1/checkout/sessions/:token/delivery
func SetDeliverySelection(c *gin.Context) {
	var req SetDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var option models.DeliveryOption
	if err := db.Where("visible = ?", true).First(&option, req.OptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELIVERY_OPTION_NOT_FOUND",
				"message": "Delivery option not found",
			},
		})
		return
	}

	sel := models.DeliverySelection{
		OptionID: option.ID,
		Name:     option.Name,
		Fee:      option.Fee,
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetDelivery(sel)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetScheduleRequest carries the optional preferred delivery slot
type SetScheduleRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// SetSchedulePreference handles PUT /api/v1/checkout/sessions/:token/schedule
func SetSchedulePreference(c *gin.Context) {
	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetSchedule(models.Schedule{Date: req.Date, Time: req.Time})
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SetContactRequest carries customer identity and the delivery address
type SetContactRequest struct {
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

// SetContactDetails handles PUT /api/v1/checkout/sessions/:token/contact -
// replaces the contact block. Partial fills are allowed; completeness is only
// enforced when advancing past the contact step.
func SetContactDetails(c *gin.Context) {
	var req SetContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	contact := models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Street:    req.Street,
		Unit:      req.Unit,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Notes:     req.Notes,
	}

	session, err := services.GetDraftStore().Update(c.Param("token"), func(d models.OrderDraft) models.OrderDraft {
		return d.SetContact(contact)
	})
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

// SubmitCheckout handles POST /api/v1/checkout/sessions/:token/submit -
// persists the draft as an order and moves the session to the terminal
// confirmation state. A session submits at most once; a second submit or a
// concurrent double-click gets a conflict.
func SubmitCheckout(c *gin.Context) {
	store := services.GetDraftStore()
	token := c.Param("token")

	session, err := store.BeginSubmit(token)
	if err != nil {
		sessionError(c, err)
		return
	}

	order, err := services.SubmitOrder(config.GetDB(), session.Draft)
	if err != nil {
		store.FailSubmit(token)

		var submitErr *services.SubmitError
		if errors.As(err, &submitErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error": gin.H{
					"code":    submitErr.Code,
					"message": submitErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUBMISSION_FAILED",
				"message": "Failed to submit order. Please try again.",
			},
		})
		return
	}

	session, err = store.FinishSubmit(token, order.OrderNumber)
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sessionResponse(session),
	})
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Invalid cart index",
			},
		})
		return 0, false
	}
	return index, true
}
