// Package entity keeps the objects realized from spawn descriptors: maze
// cells, the player and bots.
package entity

import (
	"sort"

	"github.com/Faultbox/labyrinth/internal/game/world"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// Type represents the type of entity.
type Type uint8

const (
	TypeCell Type = iota
	TypePlayer
	TypeBot
)

func (t Type) String() string {
	switch t {
	case TypeCell:
		return "cell"
	case TypePlayer:
		return "player"
	case TypeBot:
		return "bot"
	default:
		return "unknown"
	}
}

// Entity represents a spawned game object.
type Entity struct {
	ID       uint32
	Type     Type
	Name     string
	Position math.Vec3
	Extent   math.Vec3

	// Cell data, for TypeCell
	CellX, CellY int
	Kind         maze.CellKind

	// Flags
	Solid     bool // has a static collision volume
	Cullable  bool // visibility is driven by distance culling
	IsVisible bool
}

// NewEntity creates a new entity.
func NewEntity(id uint32, entityType Type) *Entity {
	return &Entity{
		ID:        id,
		Type:      entityType,
		IsVisible: true,
	}
}

// SetPosition sets the entity position.
func (e *Entity) SetPosition(x, y, z float32) {
	e.Position.X = x
	e.Position.Y = y
	e.Position.Z = z
}

// Manager manages all entities in the game. It implements world.Spawner.
type Manager struct {
	entities map[uint32]*Entity
	nextID   uint32
	playerID uint32 // 0 until SetPlayer; IDs start at 1
}

// NewManager creates a new entity manager.
func NewManager() *Manager {
	return &Manager{
		entities: make(map[uint32]*Entity),
		nextID:   1,
	}
}

// Spawn realizes a maze cell descriptor as a cullable cell entity.
func (m *Manager) Spawn(d world.SpawnDescriptor) (world.Handle, error) {
	e := NewEntity(m.allocID(), TypeCell)
	e.Name = d.Name()
	e.Position = d.Position
	e.Extent = d.Extent
	e.CellX, e.CellY = d.X, d.Y
	e.Kind = d.Kind
	e.Solid = d.Collidable()
	e.Cullable = true
	m.Add(e)
	return world.Handle(e.ID), nil
}

// Create adds a new entity of the given type with the next free ID.
func (m *Manager) Create(entityType Type, name string) *Entity {
	e := NewEntity(m.allocID(), entityType)
	e.Name = name
	m.Add(e)
	return e
}

// Add adds an entity.
func (m *Manager) Add(e *Entity) {
	m.entities[e.ID] = e
	if e.ID >= m.nextID {
		m.nextID = e.ID + 1
	}
}

// Get returns an entity by ID.
func (m *Manager) Get(id uint32) *Entity {
	return m.entities[id]
}

// SetPlayer sets the local player entity.
func (m *Manager) SetPlayer(e *Entity) {
	m.playerID = e.ID
	m.Add(e)
}

// Player returns the local player, or nil before SetPlayer.
func (m *Manager) Player() *Entity {
	if m.playerID == 0 {
		return nil
	}
	return m.Get(m.playerID)
}

// Cullable returns the entities whose visibility the culler drives.
func (m *Manager) Cullable() []*Entity {
	return m.filter(func(e *Entity) bool { return e.Cullable })
}

// GetByType returns all entities of a specific type.
func (m *Manager) GetByType(entityType Type) []*Entity {
	return m.filter(func(e *Entity) bool { return e.Type == entityType })
}

// Count returns the total number of entities.
func (m *Manager) Count() int {
	return len(m.entities)
}

// CountByType returns the number of entities of a specific type.
func (m *Manager) CountByType(entityType Type) int {
	count := 0
	for _, e := range m.entities {
		if e.Type == entityType {
			count++
		}
	}
	return count
}

// Clear removes all entities except the player. IDs are not reused.
func (m *Manager) Clear() {
	for id := range m.entities {
		if id != m.playerID {
			delete(m.entities, id)
		}
	}
}

func (m *Manager) allocID() uint32 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Manager) filter(keep func(*Entity) bool) []*Entity {
	result := make([]*Entity, 0, len(m.entities))
	for _, e := range m.entities {
		if keep(e) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
