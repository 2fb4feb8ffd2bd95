package mapmanager

import "darkdepths/pkg/game/dungeon"

// EventType identifies what happened to the managed map
type EventType int

const (
	// MapGenerated is sent after a new map replaces the current one
	MapGenerated EventType = iota
	// MapCleared is sent after Clear discards a loaded map
	MapCleared
)

func (t EventType) String() string {
	switch t {
	case MapGenerated:
		return "MapGenerated"
	case MapCleared:
		return "MapCleared"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners. Map is a copy of the new map, nil for
// MapCleared. Version is the manager's Version right after the change.
type Event struct {
	Type    EventType
	Map     *dungeon.MapData
	Version uint64
}

// Listener receives manager events in the order the changes happened.
// Listeners run synchronously on the goroutine that changed the map. They may
// query the manager but must not subscribe, unsubscribe, generate or clear.
type Listener func(Event)

// Subscribe registers a listener and returns a function that removes it
func (m *Manager) Subscribe(l Listener) (cancel func()) {
	m.subMu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = l
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subscribers, id)
		m.subMu.Unlock()
	}
}

// publish calls listeners in subscription order
func (m *Manager) publish(e Event) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for id := 0; id < m.nextSubID; id++ {
		if l, ok := m.subscribers[id]; ok {
			l(e)
		}
	}
}
