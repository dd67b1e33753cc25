package usecase

import (
	"context"
	"fmt"

	"github.com/Onimuxha/font/internal/application/port"
	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/preview"
	"github.com/Onimuxha/font/internal/logging"
)

// ConfigurePreviewUseCase connects the preview resolver to the
// persisted global preference: the global settings are loaded once at
// startup and written back on every change. Per-card overrides stay in
// memory only.
type ConfigurePreviewUseCase struct {
	store    port.PreferenceStore
	resolver *preview.Resolver
}

// NewConfigurePreviewUseCase creates a new ConfigurePreviewUseCase.
func NewConfigurePreviewUseCase(store port.PreferenceStore, resolver *preview.Resolver) *ConfigurePreviewUseCase {
	return &ConfigurePreviewUseCase{store: store, resolver: resolver}
}

// Load pulls the persisted settings into the resolver. A missing or
// malformed store yields the defaults without error.
func (uc *ConfigurePreviewUseCase) Load(ctx context.Context) entity.PreviewSettings {
	settings := uc.store.Load(ctx)
	settings.Normalize()
	uc.resolver.SetGlobal(settings)
	return settings
}

// SetGlobal updates the global settings and persists them.
func (uc *ConfigurePreviewUseCase) SetGlobal(ctx context.Context, settings entity.PreviewSettings) error {
	log := logging.FromContext(ctx)

	settings.Normalize()
	uc.resolver.SetGlobal(settings)

	if err := uc.store.Save(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to persist preview settings")
		return fmt.Errorf("save preview settings: %w", err)
	}

	log.Debug().Str("text", settings.Text).Int("size", settings.Size).Msg("preview settings saved")
	return nil
}

// IncreaseGlobalSize grows the global size one step and persists.
func (uc *ConfigurePreviewUseCase) IncreaseGlobalSize(ctx context.Context) error {
	s := uc.resolver.Global()
	s.Increase()
	return uc.SetGlobal(ctx, s)
}

// DecreaseGlobalSize shrinks the global size one step and persists.
func (uc *ConfigurePreviewUseCase) DecreaseGlobalSize(ctx context.Context) error {
	s := uc.resolver.Global()
	s.Decrease()
	return uc.SetGlobal(ctx, s)
}

// Resolver exposes the underlying resolver for per-card operations.
func (uc *ConfigurePreviewUseCase) Resolver() *preview.Resolver {
	return uc.resolver
}
