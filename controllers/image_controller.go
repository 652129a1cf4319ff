package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
	"github.com/Jevohngg/happy-valley-tree-orders/services"
	"github.com/Jevohngg/happy-valley-tree-orders/utils"
)

// UploadVariantImage handles POST /api/v1/admin/variants/:id/image - uploads
// a reference photo for a fullness variant. The file is validated, stored in
// S3, and the variant row records both the storage key and a presigned URL
// for immediate display. A replaced image is deleted from storage.
func UploadVariantImage(c *gin.Context) {
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

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "An image file is required",
			},
		})
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Image storage is not configured",
			},
		})
		return
	}

	imageKey, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to upload image",
			},
		})
		return
	}

	url, err := imageService.GetImageURL(imageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to generate image URL",
			},
		})
		return
	}

	oldKey := variant.ImageS3Key
	variant.ImageS3Key = &imageKey
	variant.ImageURL = url

	if err := db.Save(&variant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save variant image",
			},
		})
		return
	}

	// Best effort; the new image is already in place.
	if oldKey != nil && *oldKey != imageKey {
		_ = imageService.DeleteImage(*oldKey)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    variant,
	})
}

// GetVariantImage handles GET /api/v1/catalog/variants/:id/image - returns a
// fresh presigned URL for a variant's stored image. Variants whose image was
// set by URL rather than upload return that URL unchanged.
func GetVariantImage(c *gin.Context) {
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

	url := variant.ImageURL
	if variant.ImageS3Key != nil {
		imageService := services.GetImageService()
		if imageService != nil {
			fresh, err := imageService.GetImageURL(*variant.ImageS3Key)
			if err == nil && fresh != "" {
				url = fresh
			}
		}
	}

	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMAGE_NOT_FOUND",
				"message": "This variant has no image",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"url": url},
	})
}
