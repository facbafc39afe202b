package codegraph

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable BLAKE3 digest of the snapshot contents,
// usable as a cache key. Two snapshots with identical content produce
// the same fingerprint regardless of load order.
func (s *Snapshot) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		// Snapshot fields are all plain data; marshal cannot fail in
		// practice. An empty key disables cache hits rather than lying.
		return ""
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
