package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/flicks/internal/domain"
)

func sampleHistory() domain.History {
	viewed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.History{
		Movies: []domain.Item{{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Category: domain.CategoryMovie, LastViewedAt: &viewed}},
		Series: []domain.Item{{ID: "tt0903747", Title: "Breaking Bad", Year: "2008–2013", Category: domain.CategorySeries}},
	}
}

func TestHistoryStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewHistoryStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveHistory(sampleHistory()))
	require.NoError(t, s.Close())

	reopened, err := NewHistoryStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	h, ok, err := reopened.LoadHistory()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, h.Movies, 1)
	assert.Equal(t, "tt0372784", h.Movies[0].ID)
	require.NotNil(t, h.Movies[0].LastViewedAt)
	assert.True(t, h.Movies[0].LastViewedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.Len(t, h.Series, 1)
	assert.Equal(t, "Breaking Bad", h.Series[0].Title)
}

func TestHistoryStore_EmptyDatabase(t *testing.T) {
	s, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	h, ok, err := s.LoadHistory()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, h.Movies)
	assert.Empty(t, h.Series)
}

func TestHistoryStore_CorruptBlob(t *testing.T) {
	s, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHistory).Put(keyRecentlyViewed, []byte("{not json"))
	})
	require.NoError(t, err)

	_, ok, err := s.LoadHistory()
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHistoryStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s, err := NewHistoryStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveHistory(sampleHistory()))
	require.NoError(t, s.ClearHistory())
	require.NoError(t, s.Close())

	reopened, err := NewHistoryStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	_, ok, err := reopened.LoadHistory()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistoryStore_MemoryOnly(t *testing.T) {
	s, err := NewHistoryStore("")
	require.NoError(t, err)

	_, ok, err := s.LoadHistory()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveHistory(sampleHistory()))
	h, ok, err := s.LoadHistory()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, h.Movies, 1)

	require.NoError(t, s.ClearHistory())
	_, ok, _ = s.LoadHistory()
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}
