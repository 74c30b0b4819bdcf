package ecs

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// WorldData groups the entity collection and the globals.
// It is kept apart from the system list so that a tick can walk the systems
// while handing the data to each of them.
type WorldData struct {
	Entities *Entities
	Globals  *Store
}

// World owns the systems, the entities and the globals, and runs systems
// once per Update in registration order.
type World struct {
	data        *WorldData
	systems     []System
	systemStats []*systemStatsInternal
	masks       *MaskRegistry
	logger      *slog.Logger
	ticks       int64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for world lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithMaskRegistry enables bitmask filtering for systems whose required
// component types are all registered in r.
func WithMaskRegistry(r *MaskRegistry) Option {
	return func(w *World) {
		w.masks = r
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		data: &WorldData{
			Entities: NewEntities(),
			Globals:  NewStore(),
		},
		systems: make([]System, 0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	Insert(w.data.Globals, Commands{})
	return w
}

// Data returns the entity and global aggregate.
func (w *World) Data() *WorldData {
	return w.data
}

// Entities returns the world's entity collection.
func (w *World) Entities() *Entities {
	return w.data.Entities
}

// Globals returns the world's global store.
func (w *World) Globals() *Store {
	return w.data.Globals
}

// Systems returns the registered systems in execution order.
func (w *World) Systems() []System {
	return w.systems
}

// Ticks returns the number of completed updates.
func (w *World) Ticks() int64 {
	return w.ticks
}

// Commands returns the world's command buffer.
func (w *World) Commands() *Commands {
	cmds := GetMut[Commands](w.data.Globals)
	if cmds == nil {
		Insert(w.data.Globals, Commands{})
		cmds = GetMut[Commands](w.data.Globals)
	}
	return cmds
}

// CreateEntity adds an entity with a generated label whose components are
// set up by init.
func (w *World) CreateEntity(init func(components *Store)) EntityId {
	return w.CreateLabeledEntity(uuid.NewString(), init)
}

// CreateLabeledEntity adds an entity with the given label whose components
// are set up by init.
func (w *World) CreateLabeledEntity(label string, init func(components *Store)) EntityId {
	e := NewEntity(label)
	if init != nil {
		init(e.Components)
	}
	return w.AddEntity(e)
}

// AddEntity adds an already built entity.
func (w *World) AddEntity(e *Entity) EntityId {
	id := w.data.Entities.Push(e)
	w.logger.Debug("entity added", "id", id, "label", e.label, "components", e.Components.Len())
	return id
}

// RemoveEntity removes the entity with the given id.
func (w *World) RemoveEntity(id EntityId) bool {
	ok := w.data.Entities.RemoveEntity(id)
	if ok {
		w.logger.Debug("entity removed", "id", id)
	}
	return ok
}

// Register appends a system. Systems run in registration order.
func (w *World) Register(system System) {
	w.systems = append(w.systems, system)

	name := systemName(system)
	w.systemStats = append(w.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
	w.logger.Debug("system registered", "system", name, "operates_on", typeNames(system.OperatesOn()))
}

// AddSystem is an alias for Register.
func (w *World) AddSystem(system System) {
	w.Register(system)
}

// AddGlobal stores value in the world's globals, replacing any previous T.
func AddGlobal[T any](w *World, value T) {
	Insert(w.data.Globals, value)
}

// GetGlobal returns a copy of the global T.
func GetGlobal[T any](w *World) (T, bool) {
	return Get[T](w.data.Globals)
}

// GetGlobalMut returns a pointer to the global T, or nil.
func GetGlobalMut[T any](w *World) *T {
	return GetMut[T](w.data.Globals)
}

// Update runs every system once, in registration order, then applies the
// commands they queued. Each system sees the mutations made by the systems
// before it.
func (w *World) Update() {
	for i, system := range w.systems {
		start := time.Now()
		view := w.view(system.OperatesOn())
		system.Process(view, w.data.Globals)
		w.systemStats[i].record(time.Since(start))
	}

	if cmds := w.Commands(); cmds.Pending() > 0 {
		pending := cmds.Pending()
		cmds.flush(w.data.Entities)
		w.logger.Debug("commands flushed", "count", pending, "entities", w.data.Entities.Len())
	}
	w.ticks++
}

// Run calls Update at the given interval until the context is cancelled.
// A non-positive interval runs updates back to back.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		for ctx.Err() == nil {
			w.Update()
		}
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Update()
		}
	}
}

// view selects the entities carrying every type in required.
func (w *World) view(required []reflect.Type) []*Entity {
	if w.masks != nil {
		if mask, ok := w.masks.MaskOf(required...); ok {
			return w.masks.filter(w.data.Entities.items, mask)
		}
	}
	return w.data.Entities.WithTypes(required...)
}

func systemName(system System) string {
	if named, ok := system.(interface{ Name() string }); ok {
		return named.Name()
	}
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
