package utils

import "github.com/google/uuid"

// IDGenerator hands out document ids.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues UUIDv7 ids, so documents created later sort later.
// A random UUIDv4 is used if the v7 clock read fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
