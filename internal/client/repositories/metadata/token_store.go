package metadata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/minired/internal/common"
)

// TokenStore keeps the credential token as a single metadata entry.
type TokenStore struct {
	repo Repository
	key  string
}

func NewTokenStore(repo Repository) *TokenStore {
	return &TokenStore{repo: repo, key: common.TokenMetadataKey}
}

// Load returns the stored token, or "" when none is stored.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(v), nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, s.key, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Remove deletes the stored token. Removing an absent token is not an error.
func (s *TokenStore) Remove(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
