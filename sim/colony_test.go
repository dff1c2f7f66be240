package sim

import (
	"testing"

	"github.com/pthm-cable/formic/components"
	"github.com/pthm-cable/formic/config"
)

func TestAllocateSpawns(t *testing.T) {
	tests := []struct {
		name     string
		required []int
		rate     int
		want     []int
	}{
		{"proportional floor", []int{40, 50}, 20, []int{8, 11}},
		{"rate exceeds need", []int{1}, 5, []int{1}},
		{"rate exceeds both needs", []int{2, 3}, 100, []int{2, 3}},
		{"zero rate", []int{40, 50}, 0, []int{0, 0}},
		{"one kind filled", []int{0, 10}, 4, []int{0, 4}},
		{"rate smaller than kinds", []int{30, 60}, 1, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, n := range tt.required {
				total += n
			}
			got := allocateSpawns(tt.required, tt.rate, total)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestColonySpawnRespectsCaps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Colony.ScoutMax = 7
	cfg.Colony.WorkerMax = 3
	cfg.Colony.SpawnRate = 5
	cfg.Resource.Count = 0

	w, err := NewWorld(cfg, 11)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 60; i++ {
		w.Update()
		if n := w.AntCount(components.KindScout); n > cfg.Colony.ScoutMax {
			t.Fatalf("tick %d: %d scouts exceed cap %d", w.Tick(), n, cfg.Colony.ScoutMax)
		}
		if n := w.AntCount(components.KindWorker); n > cfg.Colony.WorkerMax {
			t.Fatalf("tick %d: %d workers exceed cap %d", w.Tick(), n, cfg.Colony.WorkerMax)
		}
	}

	// Ants never die, so after enough ticks both kinds sit exactly at cap.
	if n := w.AntCount(components.KindScout); n != cfg.Colony.ScoutMax {
		t.Errorf("scouts = %d, want cap %d", n, cfg.Colony.ScoutMax)
	}
	if n := w.AntCount(components.KindWorker); n != cfg.Colony.WorkerMax {
		t.Errorf("workers = %d, want cap %d", n, cfg.Colony.WorkerMax)
	}
}

func TestColonySpawnStopsWhenFull(t *testing.T) {
	cfg := testConfig(t)
	cfg.Colony.ScoutMax = 2
	cfg.Colony.WorkerMax = 2
	cfg.Colony.SpawnRate = 10
	cfg.Resource.Count = 0

	w, err := NewWorld(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		w.Update()
	}
	before := w.Summarize()

	w.Update()
	after := w.Summarize()
	if after.Scouts != before.Scouts || after.Workers != before.Workers {
		t.Errorf("full colony kept spawning: %+v -> %+v", before, after)
	}
}

// testConfig loads the embedded defaults for callers to mutate.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	return cfg
}
