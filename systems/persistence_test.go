package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStore(t *testing.T, s Store) {
	t.Helper()
	prev := store
	SetStore(s)
	t.Cleanup(func() { SetStore(prev) })
}

func TestLoadRecordDefaults(t *testing.T) {
	useStore(t, nil)
	assert.Equal(t, SavedRecord{}, LoadRecord())

	useStore(t, newMemStore())
	assert.Equal(t, SavedRecord{}, LoadRecord())
}

func TestSaveAndLoadRecord(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	require.NoError(t, SaveRecord(SavedRecord{BestWave: 7}))
	assert.JSONEq(t, `{"bestWave":7}`, string(s.items[recordKey]))
	assert.Equal(t, SavedRecord{BestWave: 7}, LoadRecord())
}

func TestCorruptRecordLoadsEmpty(t *testing.T) {
	s := newMemStore()
	s.items[recordKey] = []byte("{not json")
	useStore(t, s)

	assert.Equal(t, SavedRecord{}, LoadRecord())
}

func TestUpdatePersistenceSavesNewBest(t *testing.T) {
	s := newMemStore()
	useStore(t, s)
	e, _ := newTestECS(t)
	wave := waveOf(e)

	tick(e, UpdatePersistence)
	assert.Zero(t, s.saves, "nothing new to save")

	wave.Best = 3
	tick(e, UpdatePersistence)
	assert.Equal(t, 1, s.saves)
	assert.Equal(t, 3, wave.SavedBest)

	tick(e, UpdatePersistence)
	assert.Equal(t, 1, s.saves, "saved once per new best")
}

func TestUpdatePersistenceRetriesAfterError(t *testing.T) {
	s := newMemStore()
	s.saveErr = errDiskFull
	useStore(t, s)
	e, _ := newTestECS(t)
	wave := waveOf(e)
	wave.Best = 2

	tick(e, UpdatePersistence)
	assert.Zero(t, wave.SavedBest)

	s.saveErr = nil
	tick(e, UpdatePersistence)
	assert.Equal(t, 2, wave.SavedBest)
	assert.Equal(t, SavedRecord{BestWave: 2}, LoadRecord())
}
