package helper

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID creates a prefixed unique ID, e.g. "q-V1StGXR8_Z5jdHi6B-myT".
// NanoIDs are URL-friendly and compact, which suits IDs that appear in
// question and answer routes.
func NewID(prefix string) string {
	id, err := gonanoid.New()
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return prefix + "-" + id
}
