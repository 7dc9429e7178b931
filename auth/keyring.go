// Package auth stores the TMDB credentials in the system keyring.
package auth

import (
	"github.com/reelroll-cli/reelroll/constant"
	"github.com/zalando/go-keyring"
)

const user = "tmdb-api-key"

// SetKey persists the TMDB api key or read access token.
func SetKey(key string) error {
	return keyring.Set(constant.Reelroll, user, key)
}

// GetKey returns the stored key. keyring.ErrNotFound is returned when nothing is stored.
func GetKey() (string, error) {
	return keyring.Get(constant.Reelroll, user)
}

func DeleteKey() error {
	return keyring.Delete(constant.Reelroll, user)
}
