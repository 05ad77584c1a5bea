package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectID_Format(t *testing.T) {
	id := NewObjectID()

	assert.Len(t, id.String(), 24)
	assert.True(t, IsValidObjectID(id.String()))
}

func TestNewObjectID_Unique(t *testing.T) {
	seen := make(map[ObjectID]bool)
	for i := 0; i < 1000; i++ {
		id := NewObjectID()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("64f1b2c3d4e5f60718293a4b"))
	assert.True(t, IsValidObjectID("000000000000000000000000"))
	assert.True(t, IsValidObjectID("64F1B2C3D4E5F60718293A4B")) // uppercase hex accepted

	assert.False(t, IsValidObjectID(""))
	assert.False(t, IsValidObjectID("64f1b2c3d4e5f60718293a4"))   // 23 chars
	assert.False(t, IsValidObjectID("64f1b2c3d4e5f60718293a4bb")) // 25 chars
	assert.False(t, IsValidObjectID("64f1b2c3d4e5f60718293a4g"))  // non-hex
	assert.False(t, IsValidObjectID("not-an-object-id-at-all!"))
}
