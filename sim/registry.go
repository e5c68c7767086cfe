package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// TeleportPhase is the state of the two-object teleport transition.
type TeleportPhase int

const (
	TeleportIdle TeleportPhase = iota
	TeleportPending
)

// teleportTask is the deferred commit of a pending teleport.
type teleportTask struct {
	a, b ObjectID
	due  time.Time
}

// Registry owns the quantum objects and their entanglement relation.
// Storage is append-only: indices and ids stay stable for the session.
type Registry struct {
	objects  []QuantumObject
	index    map[ObjectID]int
	nextID   ObjectID
	selected ObjectID

	// Mirror entanglement toggles onto the partner
	symmetric bool

	pending *teleportTask
	now     func() time.Time
}

// NewRegistry creates an empty registry. now supplies wall-clock time for
// the teleport delay; nil uses time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		index:  make(map[ObjectID]int),
		nextID: 1,
		now:    now,
	}
}

// SetSymmetric selects whether ToggleEntangled also flips the partner.
func (r *Registry) SetSymmetric(on bool) { r.symmetric = on }

// Add registers obj. A zero ID is assigned by the registry; a caller
// supplied ID must not already exist. Frequency and amplitude are clamped
// to their ranges and a NaN amplitude is rejected. Returns the id and
// whether the object was added. The first object added becomes the
// selection.
func (r *Registry) Add(obj QuantumObject) (ObjectID, bool) {
	if math.IsNaN(obj.Amplitude) {
		logrus.Debugf("registry: rejected object with NaN amplitude")
		return NoObject, false
	}
	if obj.ID == NoObject {
		obj.ID = r.nextID
	}
	if _, exists := r.index[obj.ID]; exists {
		logrus.Debugf("registry: rejected duplicate object id %d", obj.ID)
		return NoObject, false
	}
	if obj.ID >= r.nextID {
		r.nextID = obj.ID + 1
	}
	obj.Frequency = FrequencyRange.Clamp(obj.Frequency)
	obj.Amplitude = AmplitudeRange.Clamp(obj.Amplitude)

	r.index[obj.ID] = len(r.objects)
	r.objects = append(r.objects, obj)
	if r.selected == NoObject {
		r.selected = obj.ID
	}
	logrus.Debugf("registry: added object %d at (%.0f, %.0f) f=%.1f", obj.ID, obj.X, obj.Y, obj.Frequency)
	return obj.ID, true
}

// Spawn adds a random unentangled object at (x, y).
func (r *Registry) Spawn(rng *rand.Rand, x, y float64) ObjectID {
	id, _ := r.Add(RandomObject(rng, x, y))
	return id
}

// Entangle pairs a and b mutually. Returns false if either is missing or
// a == b.
func (r *Registry) Entangle(a, b ObjectID) bool {
	oa, okA := r.lookup(a)
	ob, okB := r.lookup(b)
	if !okA || !okB || a == b {
		return false
	}
	oa.Entangled, oa.EntangledWith = true, b
	ob.Entangled, ob.EntangledWith = true, a
	return true
}

// ToggleEntangled flips the flag on exactly the targeted object. The partner
// reference is left alone, so toggling one side of a pair leaves a
// one-directional reference that renders no link. With SetSymmetric(true)
// the partner's flag is set to match.
func (r *Registry) ToggleEntangled(id ObjectID) bool {
	o, ok := r.lookup(id)
	if !ok {
		return false
	}
	o.Entangled = !o.Entangled
	if r.symmetric && o.EntangledWith != NoObject {
		if p, ok := r.lookup(o.EntangledWith); ok && p.EntangledWith == id {
			p.Entangled = o.Entangled
		}
	}
	logrus.Debugf("registry: object %d entangled=%v", id, o.Entangled)
	return true
}

// SetFrequency clamps value onto the frequency slider and applies it to id.
func (r *Registry) SetFrequency(id ObjectID, value float64) bool {
	o, ok := r.lookup(id)
	if !ok {
		return false
	}
	o.Frequency = FrequencyRange.Clamp(value)
	return true
}

// Select makes id the target of the frequency slider.
func (r *Registry) Select(id ObjectID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	r.selected = id
	return true
}

// SelectNext moves the selection to the next object in insertion order,
// wrapping around.
func (r *Registry) SelectNext() ObjectID {
	if len(r.objects) == 0 {
		return NoObject
	}
	i, ok := r.index[r.selected]
	if !ok {
		i = -1
	}
	r.selected = r.objects[(i+1)%len(r.objects)].ID
	return r.selected
}

// Selected returns the selected id, NoObject when empty.
func (r *Registry) Selected() ObjectID { return r.selected }

// Teleport starts the two-phase swap of the first two objects. Both are
// marked teleporting now; Advance swaps their positions once TeleportDelay
// has elapsed. No-op with fewer than two objects or while a teleport is
// already pending.
func (r *Registry) Teleport() bool {
	if len(r.objects) < 2 || r.pending != nil {
		return false
	}
	a, b := &r.objects[0], &r.objects[1]
	a.Teleporting, b.Teleporting = true, true
	r.pending = &teleportTask{a: a.ID, b: b.ID, due: r.now().Add(TeleportDelay)}
	logrus.Debugf("registry: teleport pending for objects %d and %d", a.ID, b.ID)
	return true
}

// Advance commits a pending teleport whose delay has elapsed. It is polled
// by the host loop independently of the simulation clock, so a paused
// simulation still commits. Returns true on commit.
func (r *Registry) Advance() bool {
	if r.pending == nil || r.now().Before(r.pending.due) {
		return false
	}
	task := r.pending
	r.pending = nil

	a, okA := r.lookup(task.a)
	b, okB := r.lookup(task.b)
	if !okA || !okB {
		return false
	}
	a.X, a.Y, b.X, b.Y = b.X, b.Y, a.X, a.Y
	a.Teleporting, b.Teleporting = false, false
	logrus.Infof("registry: teleported objects %d and %d", a.ID, b.ID)
	return true
}

// CancelTeleport drops a pending teleport and clears both flags.
func (r *Registry) CancelTeleport() bool {
	if r.pending == nil {
		return false
	}
	for _, id := range []ObjectID{r.pending.a, r.pending.b} {
		if o, ok := r.lookup(id); ok {
			o.Teleporting = false
		}
	}
	r.pending = nil
	logrus.Debug("registry: teleport cancelled")
	return true
}

// Phase reports whether a teleport is pending.
func (r *Registry) Phase() TeleportPhase {
	if r.pending != nil {
		return TeleportPending
	}
	return TeleportIdle
}

// Get returns a copy of the object with id.
func (r *Registry) Get(id ObjectID) (QuantumObject, bool) {
	o, ok := r.lookup(id)
	if !ok {
		return QuantumObject{}, false
	}
	return *o, true
}

// Objects returns a copy of all objects in insertion order.
func (r *Registry) Objects() []QuantumObject {
	out := make([]QuantumObject, len(r.objects))
	copy(out, r.objects)
	return out
}

func (r *Registry) Len() int { return len(r.objects) }

// Clear removes every object and any pending teleport. Ids are not reused.
func (r *Registry) Clear() {
	r.objects = r.objects[:0]
	r.index = make(map[ObjectID]int)
	r.selected = NoObject
	r.pending = nil
}

func (r *Registry) lookup(id ObjectID) (*QuantumObject, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.objects[i], true
}
