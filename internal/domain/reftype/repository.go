package reftype

import "assignly-api/internal/domain/entity"

type Repository interface {
	entity.NamedRepository[Type]
}
