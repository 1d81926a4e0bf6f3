// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.RecordStoreConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutThenGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	req := types.Requester{Name: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, s.Put(ctx, "ABCDEF1234", req, time.Now()))

	found, err := s.Get(ctx, "ABCDEF1234")
	require.NoError(t, err)
	assert.True(t, found, "issued code should be found")
}

func TestGetUnknownCode(t *testing.T) {
	s := openTestStore(t)

	found, err := s.Get(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.False(t, found, "never-issued code should not be found")
}

func TestPutIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	req := types.Requester{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, s.Put(ctx, "ABCDEF1234", req, time.Now()))
	// Same text resubmitted: same code, refreshed record, no error.
	require.NoError(t, s.Put(ctx, "ABCDEF1234", req, time.Now().Add(time.Hour)))

	found, err := s.Get(ctx, "ABCDEF1234")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(types.RecordStoreConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "ABCDEF1234", types.Requester{Name: "Ada"}, time.Now()))
	require.NoError(t, s.Close())

	s2, err := Open(types.RecordStoreConfig{Dir: dir})
	require.NoError(t, err)
	defer s2.Close()

	found, err := s2.Get(ctx, "ABCDEF1234")
	require.NoError(t, err)
	assert.True(t, found, "records should survive reopen")
}
