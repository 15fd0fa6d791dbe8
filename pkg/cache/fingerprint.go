package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Evaluation kinds used in cache fingerprints.
const (
	KindSafety     = "safety"
	KindCompliance = "compliance"
	KindCombined   = "combined"
)

// Fingerprint derives the deterministic cache key for an evaluation:
// a SHA-256 over the evaluation kind, content text, context label, and
// brand identity. Fields are delimited with NUL bytes so no two
// distinct inputs can collapse into the same byte stream. brandName is
// empty for safety evaluations, which do not depend on a brand.
func Fingerprint(kind, contentText, context, brandName string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(contentText))
	h.Write([]byte{0})
	h.Write([]byte(context))
	h.Write([]byte{0})
	h.Write([]byte(brandName))
	return hex.EncodeToString(h.Sum(nil))
}
