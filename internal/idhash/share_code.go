package idhash

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// shareCodeBytes is how much of the chart hash goes into the share code.
// 8 bytes gives an 11-12 character code with negligible collision odds
// for the volumes a single deployment sees.
const shareCodeBytes = 8

// ShareCode derives a short base58 code from a chart_id for use in URLs.
// The same chart_id always yields the same code.
func ShareCode(chartID string) string {
	hash := sha256.Sum256([]byte(chartID))
	return base58.Encode(hash[:shareCodeBytes])
}
