package ports

import (
	"assignly-api/internal/domain/reftype"
)

// TypeService manages one reference-type catalog (user types or task
// types); both catalogs share the same contract.
type TypeService = Lifecycle[reftype.Type, reftype.Patch]
