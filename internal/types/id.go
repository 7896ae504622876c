package types

import (
	"github.com/google/uuid"
)

// ID is a UUID that gin can bind from URI and query parameters.
type ID struct {
	uuid.UUID
}

// UnmarshalParam parses the parameter. An empty parameter is the nil ID.
func (i *ID) UnmarshalParam(p string) error {
	if p == "" {
		*i = ID{}
		return nil
	}

	parsed, err := uuid.Parse(p)
	if err != nil {
		return ErrIDInvalid
	}

	*i = ID{parsed}
	return nil
}
