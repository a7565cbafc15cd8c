package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// UUIDGenerator hands out record identifiers. Version 7 ids sort by creation
// time; a random v4 id is used if the v7 clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is used where ids
// have to be predictable.
type SequenceGenerator struct {
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) Generate() string {
	g.next++
	return g.prefix + "-" + strconv.Itoa(g.next)
}
