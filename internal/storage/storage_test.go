package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]KeyValue {
	t.Helper()

	fs, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	return map[string]KeyValue{
		"memory": NewMemoryStore(),
		"file":   fs,
		"s3":     NewS3Store(newFakeS3(), "bucket", "favorites"),
	}
}

func TestKeyValueContract(t *testing.T) {
	ctx := context.Background()

	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(ctx, "favorite")
			require.NoError(t, err)
			assert.False(t, ok, "unwritten key should be absent")

			require.NoError(t, kv.Set(ctx, "favorite", []byte(`[{"id":"a"}]`)))
			got, ok, err := kv.Get(ctx, "favorite")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, string(got))

			require.NoError(t, kv.Set(ctx, "favorite", []byte(`[]`)))
			got, _, err = kv.Get(ctx, "favorite")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got), "last write wins")

			assert.ErrorIs(t, kv.Set(ctx, "", nil), ErrBadKey)
			_, _, err = kv.Get(ctx, "")
			assert.ErrorIs(t, err, ErrBadKey)
		})
	}
}

func TestScopedIsolatesProfiles(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()

	alice := Scoped(base, "alice")
	bob := Scoped(base, "bob")

	require.NoError(t, alice.Set(ctx, "favorite", []byte("alice")))

	_, ok, err := bob.Get(ctx, "favorite")
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, err := base.Get(ctx, "profiles/alice/favorite")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", string(raw))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	out, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestFileStoreEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "profiles/p1/favorite", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "nested key must not create subdirectories")
	assert.False(t, entries[0].IsDir())
	assert.Equal(t, "profiles%2Fp1%2Ffavorite.json", entries[0].Name())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, closeFn, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)
	assert.NoError(t, closeFn(ctx))

	kv, _, err = Open(ctx, Options{Backend: "FILE", DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	_, _, err = Open(ctx, Options{Backend: "redis"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, _, err = Open(ctx, Options{Backend: BackendMongo})
	assert.Error(t, err)

	_, _, err = Open(ctx, Options{Backend: BackendS3})
	assert.Error(t, err)
}
