package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// shortHashLen is the length of [ShortHash], enough to tell records apart in
// logs.
const shortHashLen = 12

// hashKey builds "kind:sha256(json(parts))". Every part that changes the
// cached bytes must be in parts: the record hash plus the key options.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(sum[:]))
}

// Hash fingerprints a raw record document. Artifact and hover keys are
// derived from it, so the same bytes reuse cached charts whatever file they
// were read from.
func Hash(record []byte) string {
	sum := sha256.Sum256(record)
	return hex.EncodeToString(sum[:])
}

// ShortHash abbreviates a [Hash] for log fields.
func ShortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}
