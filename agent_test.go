package slimefield

import (
	"math"
	"testing"
)

func TestAgentStoreRespawnCount(t *testing.T) {
	specs := []SpeciesSpawn{
		{Species: 0, Mode: SpawnMode{Kind: SpawnEvenlyDistributed}, Count: 10},
		{Species: 1, Mode: SpawnMode{Kind: SpawnCenterFacingOutward}, Count: 5},
	}
	store := NewAgentStore(specs, 64, 64)
	if store.Len() != 15 {
		t.Fatalf("Len() = %d, want 15", store.Len())
	}
	for i := 0; i < 10; i++ {
		if store.Agents[i].Species != 0 {
			t.Errorf("agent %d species = %d, want 0", i, store.Agents[i].Species)
		}
	}
	for i := 10; i < 15; i++ {
		if store.Agents[i].Species != 1 {
			t.Errorf("agent %d species = %d, want 1", i, store.Agents[i].Species)
		}
	}
}

func TestAgentStoreRespawnReusesBacking(t *testing.T) {
	specs := []SpeciesSpawn{{Species: 0, Mode: SpawnMode{Kind: SpawnEvenlyDistributed}, Count: 20}}
	store := NewAgentStore(specs, 32, 32)
	backing := &store.Agents[0]
	store.Respawn(specs, 32, 32)
	if &store.Agents[0] != backing {
		t.Error("Respawn with an unchanged count should reuse the backing array")
	}
}

func TestSpawnCenterFacingOutward(t *testing.T) {
	a := spawnAgent(SpawnMode{Kind: SpawnCenterFacingOutward}, 0, 100, 100)
	if a.X != 50 || a.Y != 50 {
		t.Errorf("CenterFacingOutward position = (%v,%v), want (50,50)", a.X, a.Y)
	}
}

func TestSpawnPointFacingOutward(t *testing.T) {
	a := spawnAgent(SpawnMode{Kind: SpawnPointFacingOutward, X: 12, Y: 34}, 0, 100, 100)
	if a.X != 12 || a.Y != 34 {
		t.Errorf("PointFacingOutward position = (%v,%v), want (12,34)", a.X, a.Y)
	}
}

func TestSpawnCircumferenceFacingOutwardShape(t *testing.T) {
	// Property 8: every spawned agent lies within [d-0.5, d+0.5] of map center.
	const d = 20.0
	for i := 0; i < 200; i++ {
		a := spawnAgent(SpawnMode{Kind: SpawnCircumferenceFacingOutward, D: d}, 0, 100, 100)
		dist := math.Hypot(a.X-50, a.Y-50)
		if dist < d-0.5 || dist > d+0.5 {
			t.Fatalf("agent distance from center = %v, want within [%v, %v]", dist, d-0.5, d+0.5)
		}
	}
}

func TestSpawnCircumferenceFacingInwardPointsInward(t *testing.T) {
	a := spawnAgent(SpawnMode{Kind: SpawnCircumferenceFacingInward, D: 10}, 0, 100, 100)
	// The agent should face roughly toward the center: direction to center
	// and facing angle should align within a small tolerance.
	toCenter := outwardAngle(a.X, a.Y, 50, 50)
	diff := math.Mod(math.Abs(a.Angle-toCenter)+math.Pi, 2*math.Pi) - math.Pi
	if math.Abs(diff) > 1e-6 {
		t.Errorf("CircumferenceFacingInward angle %v should equal direction to center %v", a.Angle, toCenter)
	}
}

func TestAgentStatsHasLifetime(t *testing.T) {
	if (AgentStats{Timeout: 0}).HasLifetime() {
		t.Error("Timeout=0 should disable lifetime")
	}
	if !(AgentStats{Timeout: 5}).HasLifetime() {
		t.Error("Timeout=5 should enable lifetime")
	}
}
