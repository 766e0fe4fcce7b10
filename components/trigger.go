package components

import (
	"github.com/yohamta/donburi"
)

// TriggerContactsData records which trigger entities a character overlapped
// on the previous tick, keyed by resolv tag.
type TriggerContactsData struct {
	Inside map[string]map[donburi.Entity]struct{}
}

// Count returns how many triggers with tag are currently overlapped.
func (t *TriggerContactsData) Count(tag string) int {
	return len(t.Inside[tag])
}

var TriggerContacts = donburi.NewComponentType[TriggerContactsData]()
