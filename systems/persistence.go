package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/goblin-siege/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const recordKey = "record"

// SavedRecord is the progress stored on disk.
type SavedRecord struct {
	BestWave int `json:"bestWave"`
}

// Store is the subset of *gdata.Manager persistence needs.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store Store

// InitPersistence opens the gdata store for saved records.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "goblin_siege",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetStore replaces the store. Nil disables persistence.
func SetStore(s Store) {
	store = s
}

// LoadRecord returns the saved record, or a zero record when nothing is saved.
func LoadRecord() SavedRecord {
	var rec SavedRecord
	if store == nil {
		return rec
	}
	data, err := store.LoadItem(recordKey)
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return rec
	}
	if data == nil {
		return rec
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return SavedRecord{}
	}
	return rec
}

func SaveRecord(rec SavedRecord) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := store.SaveItem(recordKey, data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
		return err
	}
	return nil
}

// UpdatePersistence writes a new best wave as soon as it is reached.
func UpdatePersistence(e *ecs.ECS) {
	entry, ok := components.Wave.First(e.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	if wave.Best <= wave.SavedBest {
		return
	}
	if err := SaveRecord(SavedRecord{BestWave: wave.Best}); err != nil {
		return
	}
	wave.SavedBest = wave.Best
}
