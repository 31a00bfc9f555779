package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leadsync/internal/client/storage"
)

// SaveToken stores the backend access token
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket missing")
		}
		return bucket.Put(keyAccessToken, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// GetToken returns the stored access token
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return storage.ErrTokenNotFound
		}

		data := bucket.Get(keyAccessToken)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored access token
func (s *Storage) DeleteToken(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(keyAccessToken)
	})
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
