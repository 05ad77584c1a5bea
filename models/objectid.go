package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// ObjectID is the 24-hex-character identifier used for every record.
// The layout matches the classic Mongo object id: 4 bytes of unix
// seconds followed by 8 random bytes, hex encoded.
type ObjectID string

// NewObjectID generates a new identifier.
func NewObjectID() ObjectID {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a timestamp-only id rather than panic inside a request.
		binary.BigEndian.PutUint64(b[4:], uint64(time.Now().UnixNano()))
	}
	return ObjectID(hex.EncodeToString(b[:]))
}

// IsValidObjectID reports whether s is a well-formed 24-hex-character id.
func IsValidObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func (id ObjectID) String() string {
	return string(id)
}
