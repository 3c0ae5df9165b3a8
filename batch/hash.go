package batch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// computeHash computes a hash of the artifact body using xxhash.
// Downstream consumers can use it for cheap change detection between runs.
func computeHash(body []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(body))
}
