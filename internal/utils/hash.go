package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests of request bodies for the
// HashSHA256 integrity header.
//
// Hash instances are pooled, so a Hasher is safe for concurrent use and
// cheap to call on every request.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey. An empty key yields a nil
// Hasher, which signs nothing.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	header := h.HexSum(body)
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hash
// instance. A nil Hasher returns nil.
func (h *Hasher) Sum(data []byte) []byte {
	if h == nil {
		return nil
	}

	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// HexSum is Sum encoded as lowercase hex. A nil Hasher returns "".
func (h *Hasher) HexSum(data []byte) string {
	if h == nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
// Suitable for one-off hashing, e.g. verifying a header in tests.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
