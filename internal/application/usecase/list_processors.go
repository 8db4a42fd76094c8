package usecase

import (
	"context"

	"github.com/gatewise/payment-router/internal/application/dto"
	"github.com/gatewise/payment-router/internal/domain/service"
)

// ListProcessors reports the processors currently registered, in registration
// order.
type ListProcessors struct {
	registry *service.ProcessorRegistry
}

func NewListProcessors(registry *service.ProcessorRegistry) *ListProcessors {
	return &ListProcessors{registry: registry}
}

func (uc *ListProcessors) Execute(_ context.Context) dto.ListProcessorsResponse {
	processors := uc.registry.List()
	infos := make([]dto.ProcessorInfo, 0, len(processors))
	for _, p := range processors {
		infos = append(infos, dto.ProcessorInfo{
			Name:             p.Name(),
			Active:           p.Active(),
			ReliabilityScore: p.ReliabilityScore(),
		})
	}
	return dto.ListProcessorsResponse{Processors: infos}
}
