package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Validator decides whether a stored entry is trustworthy
type Validator func(Entry) bool

// Exists trusts any stored entry regardless of content
func Exists(Entry) bool {
	return true
}

// ExactLength trusts an entry only when its payload is exactly n bytes long
func ExactLength(n int) Validator {
	return func(e Entry) bool {
		return len(e.Content) == n
	}
}

// MaxAge trusts an entry written less than ttl ago
func MaxAge(ttl time.Duration) Validator {
	return func(e Entry) bool {
		return time.Since(e.UpdatedAt) <= ttl
	}
}

// ContentHash trusts an entry whose SHA-256 digest matches the hex string sum
func ContentHash(sum string) Validator {
	want := strings.ToLower(sum)
	return func(e Entry) bool {
		got := sha256.Sum256(e.Content)
		return hex.EncodeToString(got[:]) == want
	}
}

// All trusts an entry only when every validator does
func All(validators ...Validator) Validator {
	return func(e Entry) bool {
		for _, v := range validators {
			if !v(e) {
				return false
			}
		}
		return true
	}
}
