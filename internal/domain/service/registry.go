package service

import (
	"log/slog"
	"sync"

	"github.com/gatewise/payment-router/internal/domain/port"
)

// ProcessorRegistry owns the mapping from processor name to processor. It is
// the only shared mutable state in the routing core: writes are serialized,
// and List returns a point-in-time copy, so a routing call never observes a
// partially updated registry.
type ProcessorRegistry struct {
	mu     sync.RWMutex
	byName map[string]port.PaymentProcessor
	order  []string
	logger *slog.Logger
}

// NewProcessorRegistry creates an empty registry.
func NewProcessorRegistry(logger *slog.Logger) *ProcessorRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessorRegistry{
		byName: make(map[string]port.PaymentProcessor),
		logger: logger,
	}
}

// Register inserts a processor under its name. A second registration under a
// name already in use replaces the former processor wholesale, keeping its
// position in registration order; the overwrite is logged since it is a
// likely surprise source.
func (r *ProcessorRegistry) Register(p port.PaymentProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.byName[name]; exists {
		r.logger.Info("replacing registered processor", "processor", name)
	} else {
		r.order = append(r.order, name)
	}
	r.byName[name] = p
}

// Remove deletes the processor registered under name. Removing an absent name
// is a no-op.
func (r *ProcessorRegistry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// List returns a snapshot of the registered processors in registration order.
// Mutating the registry after the call does not affect an already-taken
// snapshot.
func (r *ProcessorRegistry) List() []port.PaymentProcessor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]port.PaymentProcessor, 0, len(r.order))
	for _, name := range r.order {
		snapshot = append(snapshot, r.byName[name])
	}
	return snapshot
}

// Len returns the number of registered processors.
func (r *ProcessorRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
