package game

import "testing"

func TestHarvestIsClamped(t *testing.T) {
	r := NewResource(0, 0, ResourceGold, 1.5)
	if got := r.Harvest(); got != 1.5 {
		t.Fatalf("expected only the remaining 1.5, got %.2f", got)
	}
	if r.Amount != 0 || !r.IsDepleted() {
		t.Fatalf("expected depleted pickup, amount %.2f", r.Amount)
	}
	if got := r.Harvest(); got != 0 {
		t.Fatalf("expected nothing from a depleted pickup, got %.2f", got)
	}
}

func TestRegenerationCapsAtMax(t *testing.T) {
	r := NewResource(0, 0, ResourceWood, 10)
	r.Harvest()
	if r.Amount != 8 {
		t.Fatalf("expected 8 after one harvest, got %.2f", r.Amount)
	}
	r.Update(1)
	if r.Amount != 8.5 {
		t.Fatalf("expected regen of 0.5 per second, got %.2f", r.Amount)
	}
	r.Update(100)
	if r.Amount != r.MaxAmount {
		t.Fatalf("expected regen capped at %.0f, got %.2f", r.MaxAmount, r.Amount)
	}
}

func TestStoneDoesNotRegenerate(t *testing.T) {
	r := NewResource(0, 0, ResourceStone, 10)
	r.Harvest()
	r.Update(100)
	if r.Amount != 8 {
		t.Fatalf("expected stone to stay at 8, got %.2f", r.Amount)
	}
}

func TestResourceManagerDropsDepletedNonRegenerating(t *testing.T) {
	m := NewResourceManager()
	gold := NewResource(0, 0, ResourceGold, 2)
	food := NewResource(100, 0, ResourceFood, 2)
	m.Add(gold)
	m.Add(food)

	if kind, got := m.HarvestAt(5, 5); kind != ResourceGold || got != 2 {
		t.Fatalf("expected 2 gold, got %.2f %s", got, kind)
	}
	if _, got := m.HarvestAt(105, 5); got != 2 {
		t.Fatalf("expected 2 food, got %.2f", got)
	}

	m.Update(0)
	if len(m.Resources()) != 1 || m.Resources()[0] != food {
		t.Fatalf("expected depleted gold removed and food kept, got %d pickups", len(m.Resources()))
	}
	if m.ResourceAt(105, 5) != nil {
		t.Fatalf("expected depleted food not to be harvestable yet")
	}
	m.Update(2)
	if m.ResourceAt(105, 5) != food {
		t.Fatalf("expected regrown food to be harvestable again")
	}
}

func TestScatterPlacesPickupsOnTheMap(t *testing.T) {
	world := NewWorldMap(MapTilesWide, MapTilesHigh, MapTileSize)
	m := NewResourceManager()
	placed := m.Scatter(world, seededRNG(7), DefaultPickupCount)
	if placed != DefaultPickupCount {
		t.Fatalf("expected every attempt to land on grass, got %d", placed)
	}
	limit := float64(world.WorldWidth() - world.TileSize)
	for _, r := range m.Resources() {
		if r.X < 0 || r.Y < 0 || r.X > limit || r.Y > limit {
			t.Fatalf("pickup outside map: (%.0f,%.0f)", r.X, r.Y)
		}
		if r.Amount < resourceMinAmount || r.Amount > resourceMaxAmount {
			t.Fatalf("expected amount in [20,50], got %.0f", r.Amount)
		}
	}
}

func TestScatterSkipsUnwalkableTiles(t *testing.T) {
	world := NewWorldMap(1, 2, 32)
	world.SetTerrain(0, 0, TerrainWater)
	world.SetTerrain(0, 1, TerrainWater)
	m := NewResourceManager()
	if placed := m.Scatter(world, seededRNG(1), 20); placed != 0 {
		t.Fatalf("expected nothing placed on water, got %d", placed)
	}
}

func TestWorldMapWalkable(t *testing.T) {
	world := NewWorldMap(MapTilesWide, MapTilesHigh, MapTileSize)
	if world.WorldWidth() != 1600 || world.WorldHeight() != 1600 {
		t.Fatalf("expected a 1600px square world, got %dx%d", world.WorldWidth(), world.WorldHeight())
	}
	if !world.IsWalkable(10, 10) {
		t.Fatalf("expected grass to be walkable")
	}
	if world.IsWalkable(-1, 10) || world.IsWalkable(1600, 10) {
		t.Fatalf("expected off-map points to be unwalkable")
	}
	world.SetTerrain(0, 0, TerrainMountain)
	if world.IsWalkable(10, 10) {
		t.Fatalf("expected mountain to block")
	}
}
