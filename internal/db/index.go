package db

import (
	"errors"
	"strings"
)

// ValidateIndexName checks an index name: lowercase, not starting with
// "-", "_" or "+", and free of the characters the index API rejects.
func ValidateIndexName(name string) error {
	if name == "" {
		return errors.New("index name is required")
	}
	if name == "." || name == ".." {
		return errors.New("index name must not be . or ..")
	}
	if strings.ContainsAny(name[:1], "-_+") {
		return errors.New("index name must not start with -, _ or +")
	}
	if len(name) > 255 {
		return errors.New("index name is longer than 255 bytes")
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return errors.New("index name must be lowercase")
		}
		if strings.ContainsRune(`\/*?"<>| ,#:`, r) {
			return errors.New("index name contains invalid characters")
		}
	}
	return nil
}
