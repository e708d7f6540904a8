package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/media"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type MediaHandler struct {
	uploadAssetUC *mediaUC.UploadAssetUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadAssetUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadAssetUC: uploadUC, logger: log}
}

// UploadAsset stores a profile picture, resume, or testimonial avatar and
// returns the blob reference the form stores in the document.
func (h *MediaHandler) UploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	kind := c.PostForm("kind")
	if kind == "" {
		kind = mediaUC.KindProfilePicture
	}

	output, err := h.uploadAssetUC.Execute(c.Request.Context(), mediaUC.UploadAssetInput{
		File: file,
		Kind: kind,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, envelope(UploadAssetDTO{URL: output.URL}))
}
