package delivery

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"accounthub-backend/internal/upload/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}
	if fileHeader.Size > usecase.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File size cannot exceed 10MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading file"})
		return
	}

	result, err := h.uploadUsecase.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFileTooLarge), errors.Is(err, usecase.ErrUnsupportedFileType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading file"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File uploaded successfully", "data": result})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	if err := h.uploadUsecase.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, usecase.ErrInvalidKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid object key"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted successfully"})
}
