package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

// CreateSpeciesRequest represents the request body for creating a species
type CreateSpeciesRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// CreateSpecies handles POST /api/v1/admin/species - creates a species and
// auto-provisions its catalog stubs: one fullness variant per tier
// (unavailable, zero price, no image) and height tiers 5 through 10 feet
// (available, zero price). The admin enables and prices them afterwards.
func CreateSpecies(c *gin.Context) {
	var req CreateSpeciesRequest
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
	species := models.Species{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		Visible:     true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&species).Error; err != nil {
			return err
		}

		variants := make([]models.FullnessVariant, 0, len(models.FullnessTiers))
		for _, tier := range models.FullnessTiers {
			variants = append(variants, models.FullnessVariant{
				SpeciesID:    species.ID,
				FullnessType: tier,
				Available:    false,
			})
		}
		if err := tx.Create(&variants).Error; err != nil {
			return err
		}

		heights := make([]models.SpeciesHeight, 0, 6)
		for feet := 5; feet <= 10; feet++ {
			heights = append(heights, models.SpeciesHeight{
				SpeciesID:  species.ID,
				HeightFeet: float64(feet),
				Available:  true,
			})
		}
		return tx.Create(&heights).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create species",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    species,
	})
}

// UpdateSpeciesRequest represents a partial species update. Nil fields are
// left untouched.
type UpdateSpeciesRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	Visible     *bool   `json:"visible"`
}

// UpdateSpecies handles PUT /api/v1/admin/species/:id - field-level partial
// update, including the visibility toggle
func UpdateSpecies(c *gin.Context) {
	var req UpdateSpeciesRequest
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
	if err := db.First(&species, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SPECIES_NOT_FOUND",
				"message": "Species not found",
			},
		})
		return
	}

	if req.Name != nil {
		species.Name = *req.Name
	}
	if req.Description != nil {
		species.Description = *req.Description
	}
	if req.SortOrder != nil {
		species.SortOrder = *req.SortOrder
	}
	if req.Visible != nil {
		species.Visible = *req.Visible
	}

	if err := db.Save(&species).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update species",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    species,
	})
}

// DeleteSpecies handles DELETE /api/v1/admin/species/:id - removes a species
// together with its variants and height tiers
func DeleteSpecies(c *gin.Context) {
	db := config.GetDB()
	var species models.Species
	if err := db.First(&species, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SPECIES_NOT_FOUND",
				"message": "Species not found",
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("species_id = ?", species.ID).Delete(&models.FullnessVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("species_id = ?", species.ID).Delete(&models.SpeciesHeight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&species).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete species",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// AdminGetSpecies handles GET /api/v1/admin/species/:id - returns a species
// with all variants and heights regardless of availability
func AdminGetSpecies(c *gin.Context) {
	db := config.GetDB()

	var species models.Species
	if err := db.First(&species, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SPECIES_NOT_FOUND",
				"message": "Species not found",
			},
		})
		return
	}

	var variants []models.FullnessVariant
	if err := db.Where("species_id = ?", species.ID).
		Order("fullness_type ASC").
		Find(&variants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch variants",
			},
		})
		return
	}

	var heights []models.SpeciesHeight
	if err := db.Where("species_id = ?", species.ID).
		Order("height_feet ASC").
		Find(&heights).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch heights",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": SpeciesDetail{
			Species:  species,
			Variants: variants,
			Heights:  heights,
		},
	})
}

// UpdateVariantRequest represents a partial fullness-variant update
type UpdateVariantRequest struct {
	ImageURL     *string  `json:"image_url"`
	PricePerFoot *float64 `json:"price_per_foot"`
	Available    *bool    `json:"available"`
}

// UpdateFullnessVariant handles PUT /api/v1/admin/variants/:id
func UpdateFullnessVariant(c *gin.Context) {
	var req UpdateVariantRequest
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
	var variant models.FullnessVariant
	if err := db.First(&variant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VARIANT_NOT_FOUND",
				"message": "Fullness variant not found",
			},
		})
		return
	}

	if req.ImageURL != nil {
		variant.ImageURL = *req.ImageURL
	}
	if req.PricePerFoot != nil {
		variant.PricePerFoot = *req.PricePerFoot
	}
	if req.Available != nil {
		variant.Available = *req.Available
	}

	if err := db.Save(&variant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update variant",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    variant,
	})
}

// UpdateSpeciesImageRequest carries the default image URL for a species
type UpdateSpeciesImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// UpdateSpeciesImage handles PUT /api/v1/admin/species/:id/image - stores the
// species' default image on its medium variant, which the storefront uses as
// the card image.
func UpdateSpeciesImage(c *gin.Context) {
	var req UpdateSpeciesImageRequest
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
	var variant models.FullnessVariant
	if err := db.Where("species_id = ? AND fullness_type = ?",
		c.Param("id"), models.FullnessMedium).First(&variant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VARIANT_NOT_FOUND",
				"message": "Medium variant not found for this species",
			},
		})
		return
	}

	variant.ImageURL = req.ImageURL
	if err := db.Save(&variant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update species image",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    variant,
	})
}

// AddHeightRequest represents the request body for adding a height tier
type AddHeightRequest struct {
	HeightFeet   float64 `json:"height_feet" binding:"required,gt=0"`
	PricePerFoot float64 `json:"price_per_foot"`
}

// AddSpeciesHeight handles POST /api/v1/admin/species/:id/heights - adds a
// height tier, rejecting duplicates for the same species
func AddSpeciesHeight(c *gin.Context) {
	var req AddHeightRequest
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
	if err := db.First(&species, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SPECIES_NOT_FOUND",
				"message": "Species not found",
			},
		})
		return
	}

	var count int64
	db.Model(&models.SpeciesHeight{}).
		Where("species_id = ? AND height_feet = ?", species.ID, req.HeightFeet).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DUPLICATE_HEIGHT",
				"message": "This height already exists for this species",
			},
		})
		return
	}

	height := models.SpeciesHeight{
		SpeciesID:    species.ID,
		HeightFeet:   req.HeightFeet,
		PricePerFoot: req.PricePerFoot,
		Available:    true,
	}
	if err := db.Create(&height).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to add height",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    height,
	})
}

// UpdateHeightRequest represents a partial height-tier update
type UpdateHeightRequest struct {
	PricePerFoot *float64 `json:"price_per_foot"`
	Available    *bool    `json:"available"`
}

// UpdateSpeciesHeight handles PUT /api/v1/admin/heights/:id
func UpdateSpeciesHeight(c *gin.Context) {
	var req UpdateHeightRequest
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
	var height models.SpeciesHeight
	if err := db.First(&height, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HEIGHT_NOT_FOUND",
				"message": "Height tier not found",
			},
		})
		return
	}

	if req.PricePerFoot != nil {
		height.PricePerFoot = *req.PricePerFoot
	}
	if req.Available != nil {
		height.Available = *req.Available
	}

	if err := db.Save(&height).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update height",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    height,
	})
}

// DeleteSpeciesHeight handles DELETE /api/v1/admin/heights/:id
func DeleteSpeciesHeight(c *gin.Context) {
	db := config.GetDB()
	var height models.SpeciesHeight
	if err := db.First(&height, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HEIGHT_NOT_FOUND",
				"message": "Height tier not found",
			},
		})
		return
	}

	if err := db.Delete(&height).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete height",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateStandRequest represents the request body for creating a stand
type CreateStandRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	FitsUpToFeet *float64 `json:"fits_up_to_feet"`
	SortOrder    int      `json:"sort_order"`
}

// CreateStand handles POST /api/v1/admin/stands
func CreateStand(c *gin.Context) {
	var req CreateStandRequest
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

	stand := models.Stand{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		FitsUpToFeet: req.FitsUpToFeet,
		SortOrder:    req.SortOrder,
		Visible:      true,
	}
	if err := config.GetDB().Create(&stand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create stand",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    stand,
	})
}

// UpdateStandRequest represents a partial stand update
type UpdateStandRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	FitsUpToFeet *float64 `json:"fits_up_to_feet"`
	SortOrder    *int     `json:"sort_order"`
	Visible      *bool    `json:"visible"`
}

// UpdateStand handles PUT /api/v1/admin/stands/:id
func UpdateStand(c *gin.Context) {
	var req UpdateStandRequest
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
	if err := db.First(&stand, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STAND_NOT_FOUND",
				"message": "Stand not found",
			},
		})
		return
	}

	if req.Name != nil {
		stand.Name = *req.Name
	}
	if req.Description != nil {
		stand.Description = req.Description
	}
	if req.Price != nil {
		stand.Price = *req.Price
	}
	if req.FitsUpToFeet != nil {
		stand.FitsUpToFeet = req.FitsUpToFeet
	}
	if req.SortOrder != nil {
		stand.SortOrder = *req.SortOrder
	}
	if req.Visible != nil {
		stand.Visible = *req.Visible
	}

	if err := db.Save(&stand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update stand",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stand,
	})
}

// DeleteStand handles DELETE /api/v1/admin/stands/:id
func DeleteStand(c *gin.Context) {
	db := config.GetDB()
	var stand models.Stand
	if err := db.First(&stand, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STAND_NOT_FOUND",
				"message": "Stand not found",
			},
		})
		return
	}

	if err := db.Delete(&stand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete stand",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateWreathRequest represents the request body for creating a wreath
type CreateWreathRequest struct {
	Size        string  `json:"size" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	SortOrder   int     `json:"sort_order"`
}

// CreateWreath handles POST /api/v1/admin/wreaths
func CreateWreath(c *gin.Context) {
	var req CreateWreathRequest
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

	wreath := models.Wreath{
		Size:        req.Size,
		Description: req.Description,
		Price:       req.Price,
		SortOrder:   req.SortOrder,
		Visible:     true,
	}
	if err := config.GetDB().Create(&wreath).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create wreath",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    wreath,
	})
}

// UpdateWreathRequest represents a partial wreath update
type UpdateWreathRequest struct {
	Size        *string  `json:"size"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	SortOrder   *int     `json:"sort_order"`
	Visible     *bool    `json:"visible"`
}

// UpdateWreath handles PUT /api/v1/admin/wreaths/:id
func UpdateWreath(c *gin.Context) {
	var req UpdateWreathRequest
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
	if err := db.First(&wreath, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "WREATH_NOT_FOUND",
				"message": "Wreath not found",
			},
		})
		return
	}

	if req.Size != nil {
		wreath.Size = *req.Size
	}
	if req.Description != nil {
		wreath.Description = req.Description
	}
	if req.Price != nil {
		wreath.Price = *req.Price
	}
	if req.SortOrder != nil {
		wreath.SortOrder = *req.SortOrder
	}
	if req.Visible != nil {
		wreath.Visible = *req.Visible
	}

	if err := db.Save(&wreath).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update wreath",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    wreath,
	})
}

// DeleteWreath handles DELETE /api/v1/admin/wreaths/:id
func DeleteWreath(c *gin.Context) {
	db := config.GetDB()
	var wreath models.Wreath
	if err := db.First(&wreath, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "WREATH_NOT_FOUND",
				"message": "Wreath not found",
			},
		})
		return
	}

	if err := db.Delete(&wreath).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete wreath",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateDeliveryOptionRequest represents the request body for creating a
// delivery option
type CreateDeliveryOptionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Fee         float64 `json:"fee"`
	SortOrder   int     `json:"sort_order"`
}

// CreateDeliveryOption handles POST /api/v1/admin/delivery-options
func CreateDeliveryOption(c *gin.Context) {
	var req CreateDeliveryOptionRequest
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

	option := models.DeliveryOption{
		Name:        req.Name,
		Description: req.Description,
		Fee:         req.Fee,
		SortOrder:   req.SortOrder,
		Visible:     true,
	}
	if err := config.GetDB().Create(&option).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create delivery option",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    option,
	})
}

// UpdateDeliveryOptionRequest represents a partial delivery-option update
type UpdateDeliveryOptionRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Fee         *float64 `json:"fee"`
	SortOrder   *int     `json:"sort_order"`
	Visible     *bool    `json:"visible"`
}

// UpdateDeliveryOption handles PUT /api/v1/admin/delivery-options/:id
func UpdateDeliveryOption(c *gin.Context) {
	var req UpdateDeliveryOptionRequest
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
	if err := db.First(&option, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELIVERY_OPTION_NOT_FOUND",
				"message": "Delivery option not found",
			},
		})
		return
	}

	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.Description != nil {
		option.Description = req.Description
	}
	if req.Fee != nil {
		option.Fee = *req.Fee
	}
	if req.SortOrder != nil {
		option.SortOrder = *req.SortOrder
	}
	if req.Visible != nil {
		option.Visible = *req.Visible
	}

	if err := db.Save(&option).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update delivery option",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    option,
	})
}

// DeleteDeliveryOption handles DELETE /api/v1/admin/delivery-options/:id
func DeleteDeliveryOption(c *gin.Context) {
	db := config.GetDB()
	var option models.DeliveryOption
	if err := db.First(&option, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELIVERY_OPTION_NOT_FOUND",
				"message": "Delivery option not found",
			},
		})
		return
	}

	if err := db.Delete(&option).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete delivery option",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// AdminListSpecies handles GET /api/v1/admin/species - lists every species
// including hidden ones
func AdminListSpecies(c *gin.Context) {
	var species []models.Species
	if err := config.GetDB().Order("sort_order ASC").Find(&species).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch species",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    species,
	})
}
