package reftype

import (
	domain "assignly-api/internal/domain/reftype"
)

func fromDBModel(model *Type) *domain.Type {
	return &domain.Type{
		UUID:        model.UUID,
		Name:        model.Name,
		Description: model.Description,

		Active:  model.Active,
		Deleted: model.Deleted,
	}
}

func fromDBModels(models Types) []*domain.Type {
	ts := make([]*domain.Type, len(models))
	for idx, t := range models {
		ts[idx] = fromDBModel(t)
	}

	return ts
}
