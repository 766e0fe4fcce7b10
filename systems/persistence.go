package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const orbsItem = "orbs"

// ItemStore is the subset of *gdata.Manager used for saves.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedOrbs represents the orb counts stored on disk, keyed by element name.
type SavedOrbs struct {
	Counts map[string]int `json:"counts"`
}

var store ItemStore

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetItemStore replaces the save backend. Passing nil disables saving.
func SetItemStore(s ItemStore) {
	store = s
}

// LoadOrbs restores saved orb counts onto e. A missing save leaves e untouched.
func LoadOrbs(e *donburi.Entry) error {
	if store == nil {
		return nil
	}

	data, err := store.LoadItem(orbsItem)
	if err != nil {
		log.Printf("Warning: Could not load orbs: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var saved SavedOrbs
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("parse saved orbs: %w", err)
	}

	for name, n := range saved.Counts {
		el, err := orbs.ParseElement(name)
		if err != nil {
			log.Printf("Warning: ignoring saved orb count: %v", err)
			continue
		}
		if err := SetOrbAmount(e, el, n); err != nil {
			return err
		}
	}
	components.Orbs.Get(e).Dirty = false
	return nil
}

// SaveOrbs writes the orb counts of e.
func SaveOrbs(e *donburi.Entry) error {
	if store == nil {
		return nil
	}

	counts := components.Orbs.Get(e).Counts()
	saved := SavedOrbs{Counts: make(map[string]int, len(counts))}
	for _, el := range orbs.Elements() {
		saved.Counts[el.String()] = counts[el]
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Printf("Warning: Could not serialize orbs: %v", err)
		return err
	}
	if err := store.SaveItem(orbsItem, data); err != nil {
		log.Printf("Warning: Could not save orbs: %v", err)
		return err
	}
	components.Orbs.Get(e).Dirty = false
	return nil
}

// SaveDirtyOrbs saves every character whose counts changed since the last save.
func SaveDirtyOrbs(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		if components.Orbs.Get(e).Dirty {
			_ = SaveOrbs(e)
		}
	})
}
