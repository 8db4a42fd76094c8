package usecase

import (
	"context"
	"log/slog"

	"github.com/gatewise/payment-router/internal/domain/service"
)

// RemoveProcessor unregisters a processor by name. Removing a name that was
// never registered is a no-op.
type RemoveProcessor struct {
	registry *service.ProcessorRegistry
	logger   *slog.Logger
}

func NewRemoveProcessor(registry *service.ProcessorRegistry, logger *slog.Logger) *RemoveProcessor {
	return &RemoveProcessor{registry: registry, logger: logger}
}

func (uc *RemoveProcessor) Execute(_ context.Context, name string) {
	uc.registry.Remove(name)
	uc.logger.Info("processor removed", "processor", name)
}
