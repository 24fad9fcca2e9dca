package reftype

import (
	"strings"

	"assignly-api/internal/domain/reftype"
)

func ToResponseType(tDomain reftype.Type) Type {
	return Type{
		UUID:        tDomain.UUID,
		Name:        tDomain.Name,
		Description: tDomain.Description,
		Active:      tDomain.Active,
		Deleted:     tDomain.Deleted,
	}
}

func ToResponseTypes(tsDomain []*reftype.Type) Types {
	ts := make(Types, len(tsDomain))
	for idx, t := range tsDomain {
		ts[idx] = ToResponseType(*t)
	}

	return ts
}

// Names are stored lowercase, matching the catalog's case-insensitive
// uniqueness.
func ToDomainType(tRequest Request) reftype.Type {
	return reftype.Type{
		Name:        strings.ToLower(strings.TrimSpace(tRequest.Name)),
		Description: tRequest.Description,
	}
}

func ToPatch(tRequest UpdateRequest) reftype.Patch {
	p := reftype.Patch{
		Description: tRequest.Description,
	}
	if tRequest.Name != nil {
		name := strings.ToLower(strings.TrimSpace(*tRequest.Name))
		p.Name = &name
	}

	return p
}
