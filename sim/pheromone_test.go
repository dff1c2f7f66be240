package sim

import "testing"

func TestNewPheromone(t *testing.T) {
	tests := []struct {
		name     string
		strength int
		decay    int
		max      int
		wantErr  bool
	}{
		{"full strength", 1000, 5, 1000, false},
		{"mid strength", 500, 10, 1000, false},
		{"strength equals decay", 10, 10, 1000, false},
		{"above maximum", 1001, 5, 1000, true},
		{"below decay rate", 4, 5, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPheromone(PheromoneExploration, tt.strength, tt.decay, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPheromone(%d, %d, %d) accepted invalid values", tt.strength, tt.decay, tt.max)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPheromone: %v", err)
			}
			if p.Strength != tt.strength || p.DecayRate != tt.decay {
				t.Errorf("got strength %d decay %d, want %d %d", p.Strength, p.DecayRate, tt.strength, tt.decay)
			}
		})
	}
}

func TestPheromoneRefresh(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		amount int
		max    int
		want   int
	}{
		{"plain add", 100, 50, 1000, 150},
		{"saturates at max", 900, 500, 1000, 1000},
		{"exact fit", 900, 100, 1000, 1000},
		{"huge amount does not wrap", 1, int(^uint(0) >> 1), 1000, 1000},
		{"negative ignored", 100, -50, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pheromone{Kind: PheromoneResource, Strength: tt.start, DecayRate: 10}
			p.Refresh(tt.amount, tt.max)
			if p.Strength != tt.want {
				t.Errorf("Refresh(%d): strength = %d, want %d", tt.amount, p.Strength, tt.want)
			}
		})
	}
}

func TestPheromoneTick(t *testing.T) {
	p := Pheromone{Kind: PheromoneExploration, Strength: 10, DecayRate: 5}

	if alive := p.Tick(); !alive || p.Strength != 5 {
		t.Fatalf("after first tick: strength %d alive %v, want 5 true", p.Strength, alive)
	}
	if alive := p.Tick(); alive || p.Strength != 0 {
		t.Fatalf("after second tick: strength %d alive %v, want 0 false", p.Strength, alive)
	}
	// Expiry is sticky
	if alive := p.Tick(); alive || p.Strength != 0 {
		t.Fatalf("after expiry: strength %d alive %v, want 0 false", p.Strength, alive)
	}
}

func TestPheromoneTickUnevenDecay(t *testing.T) {
	p := Pheromone{Kind: PheromoneResource, Strength: 12, DecayRate: 5}
	p.Tick()
	p.Tick()
	// 12 - 5 - 5 = 2, still alive; the next tick clamps to zero
	if p.Strength != 2 {
		t.Fatalf("strength = %d, want 2", p.Strength)
	}
	if alive := p.Tick(); alive || p.Strength != 0 {
		t.Errorf("final tick: strength %d alive %v, want 0 false", p.Strength, alive)
	}
}
