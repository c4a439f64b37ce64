// Package storage provides the durable key-value store that backs per-profile
// favorites, the server-side stand-in for a browser's local storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// KeyValue is a minimal durable byte store. Get reports false when the key
// has never been written.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrBadKey         = errors.New("storage key must not be empty")
)

const (
	BackendMemory    = "memory"
	BackendFile      = "file"
	BackendMongo     = "mongo"
	BackendFirestore = "firestore"
	BackendS3        = "s3"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string

	DataDir string

	MongoURI string
	MongoDB  string

	FirestoreProjectID       string
	FirestoreCredentialsJSON string

	S3Bucket string
	S3Prefix string
}

// Open builds the configured backend. The returned close func releases any
// client connections and is never nil.
func Open(ctx context.Context, opts Options) (KeyValue, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch strings.ToLower(opts.Backend) {
	case "", BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile:
		s, err := NewFileStore(opts.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case BackendMongo:
		s, err := NewMongoStore(ctx, opts.MongoURI, opts.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendFirestore:
		s, err := NewFirestoreStore(ctx, opts.FirestoreProjectID, opts.FirestoreCredentialsJSON)
		if err != nil {
			return nil, nil, err
		}
		return s, func(context.Context) error { return s.Close() }, nil
	case BackendS3:
		s, err := NewS3StoreFromEnv(ctx, opts.S3Bucket, opts.S3Prefix)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

type scoped struct {
	kv     KeyValue
	prefix string
}

// Scoped namespaces every key under profiles/{scope}/, giving each profile
// its own view of kv.
func Scoped(kv KeyValue, scope string) KeyValue {
	return &scoped{kv: kv, prefix: "profiles/" + scope + "/"}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.kv.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.Set(ctx, s.prefix+key, value)
}
