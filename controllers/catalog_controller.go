package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

// ListSpecies handles GET /api/v1/catalog/species - lists visible species in
// display order
func ListSpecies(c *gin.Context) {
	db := config.GetDB()

	var species []models.Species
	if err := db.Where("visible = ?", true).
		Order("sort_order ASC").
		Find(&species).Error; err != nil {
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

// SpeciesDetail is a species together with its selectable fullness variants
// and height tiers
type SpeciesDetail struct {
	models.Species
	Variants []models.FullnessVariant `json:"variants"`
	Heights  []models.SpeciesHeight   `json:"heights"`
}

// GetSpecies handles GET /api/v1/catalog/species/:id - returns one visible
// species with its available fullness variants and height tiers. The two
// child lists are fetched concurrently; if either fetch fails the whole
// request fails.
func GetSpecies(c *gin.Context) {
	db := config.GetDB()

	var species models.Species
	if err := db.Where("visible = ?", true).First(&species, c.Param("id")).Error; err != nil {
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
	var heights []models.SpeciesHeight

	var g errgroup.Group
	g.Go(func() error {
		return db.Where("species_id = ? AND available = ?", species.ID, true).
			Find(&variants).Error
	})
	g.Go(func() error {
		return db.Where("species_id = ? AND available = ?", species.ID, true).
			Order("height_feet ASC").
			Find(&heights).Error
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch species details",
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

// ListStands handles GET /api/v1/catalog/stands - lists visible stands in
// display order
func ListStands(c *gin.Context) {
	db := config.GetDB()

	var stands []models.Stand
	if err := db.Where("visible = ?", true).
		Order("sort_order ASC").
		Find(&stands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch stands",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stands,
	})
}

// ListWreaths handles GET /api/v1/catalog/wreaths - lists visible wreaths in
// display order
func ListWreaths(c *gin.Context) {
	db := config.GetDB()

	var wreaths []models.Wreath
	if err := db.Where("visible = ?", true).
		Order("sort_order ASC").
		Find(&wreaths).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch wreaths",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    wreaths,
	})
}

// ListDeliveryOptions handles GET /api/v1/catalog/delivery-options - lists
// visible delivery options in display order
func ListDeliveryOptions(c *gin.Context) {
	db := config.GetDB()

	var options []models.DeliveryOption
	if err := db.Where("visible = ?", true).
		Order("sort_order ASC").
		Find(&options).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch delivery options",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    options,
	})
}
