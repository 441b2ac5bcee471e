// controllers/upload.go
package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"glowbook-backend/storage"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var imageUploader *storage.Uploader

// InitUploader wires the Cloudinary-backed image store. Uploads return
// 503 until credentials are configured.
func InitUploader(u *storage.Uploader) {
	imageUploader = u
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage accepts a multipart image and returns its public URL
func UploadImage(c *gin.Context) {
	if imageUploader == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		utils.RespondWithError(c, http.StatusBadRequest, "Only jpg, png and webp images are allowed")
		return
	}

	// 5 MB cap
	if fileHeader.Size > 5<<20 {
		utils.RespondWithError(c, http.StatusBadRequest, "Image must be smaller than 5 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	url, err := imageUploader.UploadImage(c.Request.Context(), file, uuid.New().String())
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
