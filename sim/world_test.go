package sim

import (
	"testing"

	"lanesurvivor/geom"
)

func TestProgress(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProgress(cfg)
	if p.MinX != 0 || p.WallX != 20 {
		t.Fatalf("initial progress = %+v", p)
	}

	p.Advance(5, cfg.WallOffset)
	if p.MinX != 0 || p.WallX != 20 {
		t.Errorf("advance backwards changed progress: %+v", p)
	}
	p.Advance(-12, cfg.WallOffset)
	if p.MinX != -12 || p.WallX != 3 {
		t.Errorf("progress = %+v, want MinX -12 WallX 3", p)
	}
	if x := p.ClampForward(10); x != 3 {
		t.Errorf("ClampForward(10) = %v, want 3", x)
	}
	if x := p.ClampForward(-40); x != -40 {
		t.Errorf("ClampForward(-40) = %v", x)
	}

	p.Rebase(349, cfg.RecycleWallOffset)
	if p.MinX != 349 || p.WallX != 379 {
		t.Errorf("rebased progress = %+v", p)
	}
}

func TestDespawnIsDeferredAndRecursive(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg, NewManualClock(0), nil)
	enemy := s.spawnEnemy(EnemySkins[0], geom.V3(-40, 0, 0))
	kids := Children.Get(enemy).Entities
	if len(kids) != 1 {
		t.Fatalf("enemy has %d children, want 1 health bar", len(kids))
	}
	bar := kids[0]

	s.world.Despawn(enemy.Entity())
	if !s.world.Valid(enemy.Entity()) {
		t.Fatal("despawn should wait for Flush")
	}
	if !s.world.Pending(enemy.Entity()) {
		t.Fatal("enemy should be pending")
	}

	s.world.Despawn(enemy.Entity())
	s.world.Flush()
	if s.world.Valid(enemy.Entity()) || s.world.Valid(bar) {
		t.Fatal("enemy and its health bar should be gone after Flush")
	}
	if s.world.Count() != 0 {
		t.Errorf("world still has %d entities", s.world.Count())
	}
}

func TestClearRemovesEverything(t *testing.T) {
	s := New(DefaultConfig(), NewManualClock(0), nil)
	s.setupWorld()
	s.spawnEnemy(EnemySkins[1], geom.V3(-30, 0, 2))
	s.fire(geom.Zero, geom.V3(-1, 0, 0), 25, 25, true)
	s.world.Despawn(s.world.Enemies()[0].Entity())

	s.world.Clear()
	if n := s.world.Count(); n != 0 {
		t.Fatalf("Clear left %d entities", n)
	}
	if _, ok := s.world.Player(); ok {
		t.Error("player survived Clear")
	}
	s.world.Flush()
}
