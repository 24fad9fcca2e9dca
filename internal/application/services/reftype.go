package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	domain "assignly-api/internal/domain/reftype"
)

// NewTypeService builds the lifecycle manager for one reference-type
// catalog. kind distinguishes the two catalogs in events and metrics
// ("user_type" or "task_type").
func NewTypeService(
	typeRepository domain.Repository,
	kind string,
	rmq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.TypeService {
	desc := Descriptor[domain.Type, domain.Patch]{
		Kind:     kind,
		ID:       func(t *domain.Type) domain.UUID { return t.UUID },
		Key:      func(t *domain.Type) string { return t.Name },
		PatchKey: func(p domain.Patch) *string { return p.Name },
		Apply: func(t *domain.Type, p domain.Patch) {
			if p.Name != nil {
				t.Name = *p.Name
			}
			if p.Description != nil {
				t.Description = *p.Description
			}
		},
		DupErr: entity.ErrDuplicateName,
	}

	return NewLifecycle(typeRepository, desc, rmq, mCounter)
}
