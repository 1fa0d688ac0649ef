package models

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewID generates an opaque unique identifier for projects and services.
// IDs are stable for the lifetime of the record they identify.
func NewID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, 21)
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id, nil
}

// MustNewID is NewID for places where id generation cannot meaningfully
// fail (crypto/rand exhaustion). It panics on error.
func MustNewID() string {
	id, err := NewID()
	if err != nil {
		panic(err)
	}
	return id
}
