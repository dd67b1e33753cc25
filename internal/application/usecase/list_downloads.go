package usecase

import (
	"context"

	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/repository"
)

// ListDownloadsUseCase reads the recorded download history.
type ListDownloadsUseCase struct {
	history repository.DownloadRepository
}

// NewListDownloadsUseCase creates a new ListDownloadsUseCase.
func NewListDownloadsUseCase(history repository.DownloadRepository) *ListDownloadsUseCase {
	return &ListDownloadsUseCase{history: history}
}

// Execute returns the most recent downloads, newest first.
func (uc *ListDownloadsUseCase) Execute(ctx context.Context, limit int) ([]*entity.DownloadEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.history.Recent(ctx, limit)
}
