package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "nested", "history.json"))
	require.NoError(t, err)
	return s
}

func TestNewStorage(t *testing.T) {
	_, err := NewStorage("")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err = NewStorage(path)
	assert.Error(t, err)
}

func TestStorage_AddAndReload(t *testing.T) {
	s := newTestStorage(t)

	rec := &Record{
		Kind:    KindSwap,
		TxHash:  "0xABC",
		Account: "0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A",
		TokenA:  "BUSD",
		TokenB:  "PLANT",
		AmountA: "10",
		Status:  StatusConfirmed,
	}
	require.NoError(t, s.Add(rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Created.IsZero())

	reloaded, err := NewStorage(s.GetFilePath())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Count())

	got, err := reloaded.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, KindSwap, got.Kind)
	assert.Equal(t, "PLANT", got.TokenB)

	byHash, err := reloaded.FindByHash("0xabc")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byHash.ID)

	_, err = reloaded.FindByHash("0xdef")
	assert.Error(t, err)
}

func TestStorage_UpdateStatus(t *testing.T) {
	s := newTestStorage(t)

	rec := &Record{Kind: KindApprove, TxHash: "0x1", Status: StatusConfirmed}
	require.NoError(t, s.Add(rec))

	require.NoError(t, s.UpdateStatus(rec.ID, StatusFailed, 12, "reverted"))
	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, uint64(12), got.BlockNumber)
	assert.Equal(t, "reverted", got.ErrorMessage)

	assert.Error(t, s.UpdateStatus("missing", StatusFailed, 0, ""))
}

func TestStorage_ListNewestFirst(t *testing.T) {
	s := newTestStorage(t)

	first := &Record{Kind: KindApprove}
	second := &Record{Kind: KindSwap}
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))
	// force a deterministic ordering
	first.Created = time.Now().Add(-time.Minute)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
