// Package utils provides general-purpose helper utilities used across
// different parts of the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces notification and export identifiers. V7 UUIDs are
// preferred for their time-ordered prefix; generation falls back to V4 when
// the system clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
