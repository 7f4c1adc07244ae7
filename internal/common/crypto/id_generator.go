package crypto

import "github.com/google/uuid"

// IDGenerator mints ids for newly created users. Ids are opaque strings;
// callers never parse them.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random uuid ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	return uuid.NewString(), nil
}
