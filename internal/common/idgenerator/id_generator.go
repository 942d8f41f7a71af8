// Package idgenerator produces transfer references composed of an optional
// prefix, a millisecond timestamp, and a base64-encoded UUID. References end
// up as transfer descriptions on the bank side, so they must be unique and
// URL-safe.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	encodedUUID := rawURLEncodedUUID(uuid.New())
	generatedID := fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixMilli(), encodedUUID)

	if prefix == "" {
		generatedID = fmt.Sprintf("%d%s", time.Now().UnixMilli(), encodedUUID)
	}

	return generatedID
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
