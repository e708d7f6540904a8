package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// Asset kinds accepted by the upload endpoint. Each maps to its own storage
// folder; the returned URL is the opaque blob reference stored in the
// profile document.
const (
	KindProfilePicture = "profile_picture"
	KindResume         = "resume"
	KindAvatar         = "avatar"
)

var assetFolders = map[string]string{
	KindProfilePicture: "portfolios/profile_pictures",
	KindResume:         "portfolios/resumes",
	KindAvatar:         "portfolios/avatars",
}

type UploadAssetUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAssetUseCase(u service.Uploader, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{uploader: u, logger: log}
}

type UploadAssetInput struct {
	File io.Reader
	Kind string
}

type UploadAssetOutput struct {
	URL string
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
	folder, ok := assetFolders[input.Kind]
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown asset kind %q", input.Kind), nil)
	}

	publicID := uuid.New().String()
	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload asset", err)
	}

	return &UploadAssetOutput{URL: url}, nil
}
