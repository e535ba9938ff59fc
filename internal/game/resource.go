package game

import "math/rand/v2"

const (
	ResourceSize        = 24
	resourceHarvestRate = 2.0
	resourceRegenRate   = 0.5
	resourceMinAmount   = 20
	resourceMaxAmount   = 50
	DefaultPickupCount  = 100
)

// Resource is a pickup on the map. Wood and food regrow; gold and stone deplete for good.
type Resource struct {
	X            float64
	Y            float64
	Kind         ResourceKind
	Amount       float64
	MaxAmount    float64
	Size         int
	HarvestRate  float64
	RegenRate    float64
	Regenerating bool
}

func NewResource(x, y float64, kind ResourceKind, amount float64) *Resource {
	return &Resource{
		X:            x,
		Y:            y,
		Kind:         kind,
		Amount:       amount,
		MaxAmount:    amount,
		Size:         ResourceSize,
		HarvestRate:  resourceHarvestRate,
		RegenRate:    resourceRegenRate,
		Regenerating: kind == ResourceWood || kind == ResourceFood,
	}
}

func randomResourceAmount(rng *rand.Rand) float64 {
	return float64(resourceMinAmount + rng.IntN(resourceMaxAmount-resourceMinAmount+1))
}

// Harvest takes up to HarvestRate from the pickup and returns what was taken.
func (r *Resource) Harvest() float64 {
	if r.Amount <= 0 {
		return 0
	}
	taken := min(r.HarvestRate, r.Amount)
	r.Amount -= taken
	return taken
}

func (r *Resource) Update(dt float64) {
	if r.Regenerating && r.Amount < r.MaxAmount {
		r.Amount = min(r.MaxAmount, r.Amount+r.RegenRate*dt)
	}
}

func (r *Resource) IsDepleted() bool {
	return r.Amount <= 0
}

func (r *Resource) ContainsPoint(x, y float64) bool {
	return Rect{X: r.X, Y: r.Y, W: float64(r.Size), H: float64(r.Size)}.Contains(x, y)
}

type ResourceManager struct {
	resources []*Resource
}

func NewResourceManager() *ResourceManager {
	return &ResourceManager{}
}

// Scatter makes count placement attempts on the map. Attempts that land on unwalkable
// terrain are dropped rather than retried.
func (m *ResourceManager) Scatter(world *WorldMap, rng *rand.Rand, count int) int {
	maxX := world.WorldWidth() - world.TileSize
	maxY := world.WorldHeight() - world.TileSize
	if maxX < 0 || maxY < 0 {
		return 0
	}
	placed := 0
	for i := 0; i < count; i++ {
		x := float64(rng.IntN(maxX + 1))
		y := float64(rng.IntN(maxY + 1))
		if !world.IsWalkable(x, y) {
			continue
		}
		kind := resourceKinds[rng.IntN(len(resourceKinds))]
		m.Add(NewResource(x, y, kind, randomResourceAmount(rng)))
		placed++
	}
	return placed
}

func (m *ResourceManager) Add(r *Resource) {
	m.resources = append(m.resources, r)
}

func (m *ResourceManager) Resources() []*Resource {
	return m.resources
}

// Update regrows pickups and drops depleted ones that never regrow.
func (m *ResourceManager) Update(dt float64) {
	kept := m.resources[:0]
	for _, r := range m.resources {
		r.Update(dt)
		if r.IsDepleted() && !r.Regenerating {
			continue
		}
		kept = append(kept, r)
	}
	clear(m.resources[len(kept):])
	m.resources = kept
}

func (m *ResourceManager) ResourceAt(x, y float64) *Resource {
	for _, r := range m.resources {
		if r.ContainsPoint(x, y) && !r.IsDepleted() {
			return r
		}
	}
	return nil
}

// HarvestAt harvests the first non-depleted pickup under the point.
func (m *ResourceManager) HarvestAt(x, y float64) (ResourceKind, float64) {
	r := m.ResourceAt(x, y)
	if r == nil {
		return "", 0
	}
	return r.Kind, r.Harvest()
}

// HarvestWholeAt harvests like HarvestAt but only takes whole units; a fractional
// remainder stays on the pickup.
func (m *ResourceManager) HarvestWholeAt(x, y float64) (ResourceKind, int) {
	r := m.ResourceAt(x, y)
	if r == nil {
		return "", 0
	}
	taken := r.Harvest()
	whole := int(taken)
	r.Amount += taken - float64(whole)
	return r.Kind, whole
}
