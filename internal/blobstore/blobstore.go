// Package blobstore persists named JSON documents to a durable key-value
// medium. Each collection is written whole-document-at-a-time; there is no
// incremental or diffed write path.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no document is stored under the key.
var ErrNotExist = errors.New("blob does not exist")

// Store reads and writes named JSON documents. Save replaces any existing
// document under the key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Well-known document keys for the persisted state layout.
const (
	KeyVisitors      = "visitors"
	KeyLogs          = "logs"
	KeySavedHosts    = "saved_hosts"
	KeySavedVisitors = "saved_visitors"
)
