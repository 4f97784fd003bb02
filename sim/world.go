package sim

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"
)

var (
	playerQuery     = donburi.NewQuery(filter.Contains(PlayerTag, Transform))
	enemyQuery      = donburi.NewQuery(filter.Contains(EnemyTag, Transform, Health))
	projectileQuery = donburi.NewQuery(filter.Contains(Projectile, Transform))
	propQuery       = donburi.NewQuery(filter.Contains(Prop, Transform))
	healthBarQuery  = donburi.NewQuery(filter.Contains(HealthBar))
	cameraQuery     = donburi.NewQuery(filter.Contains(Camera))
	indicatorQuery  = donburi.NewQuery(filter.Contains(IndicatorTag, Transform))
	gameplayQuery   = donburi.NewQuery(filter.Contains(Gameplay))
)

// World is the entity registry shared by all systems.
// Removals are deferred: Despawn queues an entity and Flush applies the queue,
// so a system never invalidates entries another part of the same pass still holds.
type World struct {
	ecs     donburi.World
	pending []donburi.Entity
}

// NewWorld creates an empty registry
func NewWorld() *World {
	return &World{
		ecs:     donburi.NewWorld(),
		pending: make([]donburi.Entity, 0, 64),
	}
}

// Valid reports whether the entity still exists
func (w *World) Valid(e donburi.Entity) bool {
	return w.ecs.Valid(e)
}

// Entry returns the entry of a live entity
func (w *World) Entry(e donburi.Entity) *donburi.Entry {
	return w.ecs.Entry(e)
}

// create makes a new entity and returns its entry
func (w *World) create(components ...component.IComponentType) *donburi.Entry {
	e := w.ecs.Create(components...)
	return w.ecs.Entry(e)
}

// adopt records child as owned by parent
func (w *World) adopt(parent, child *donburi.Entry) {
	kids := Children.Get(parent)
	kids.Entities = append(kids.Entities, child.Entity())
}

// Despawn queues e and everything it owns for removal at the next Flush
func (w *World) Despawn(e donburi.Entity) {
	w.pending = append(w.pending, e)
}

// Pending reports whether e is queued for removal
func (w *World) Pending(e donburi.Entity) bool {
	for _, p := range w.pending {
		if p == e {
			return true
		}
	}
	return false
}

// Flush removes every queued entity with its subtree
func (w *World) Flush() {
	for _, e := range w.pending {
		w.DespawnNow(e)
	}
	w.pending = w.pending[:0]
}

// DespawnNow removes e and its subtree immediately.
// The subtree is walked with an explicit stack.
func (w *World) DespawnNow(root donburi.Entity) {
	stack := []donburi.Entity{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !w.ecs.Valid(e) {
			continue
		}
		entry := w.ecs.Entry(e)
		if entry.HasComponent(Children) {
			stack = append(stack, Children.Get(entry).Entities...)
		}
		w.ecs.Remove(e)
	}
}

// Clear removes every gameplay entity synchronously and drops the queue
func (w *World) Clear() {
	for _, entry := range w.collect(gameplayQuery) {
		w.DespawnNow(entry.Entity())
	}
	w.pending = w.pending[:0]
}

// collect snapshots the entries matching q so callers can create or queue
// removals while walking them
func (w *World) collect(q *donburi.Query) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, q.Count(w.ecs))
	q.Each(w.ecs, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// Player returns the player actor if one exists
func (w *World) Player() (*donburi.Entry, bool) {
	return playerQuery.First(w.ecs)
}

// Players returns every player actor in iteration order
func (w *World) Players() []*donburi.Entry { return w.collect(playerQuery) }

// Camera returns the gameplay camera if one exists
func (w *World) Camera() (*donburi.Entry, bool) {
	return cameraQuery.First(w.ecs)
}

// Indicator returns the aim indicator if one exists
func (w *World) Indicator() (*donburi.Entry, bool) {
	return indicatorQuery.First(w.ecs)
}

func (w *World) Enemies() []*donburi.Entry     { return w.collect(enemyQuery) }
func (w *World) Projectiles() []*donburi.Entry { return w.collect(projectileQuery) }
func (w *World) Props() []*donburi.Entry       { return w.collect(propQuery) }
func (w *World) HealthBars() []*donburi.Entry  { return w.collect(healthBarQuery) }

// Count returns the number of live gameplay entities
func (w *World) Count() int { return gameplayQuery.Count(w.ecs) }
