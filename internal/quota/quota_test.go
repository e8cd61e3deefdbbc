package quota

import "testing"

func TestLevelForBoundaries(t *testing.T) {
	const threshold = 5

	cases := []struct {
		name      string
		remaining int
		want      Level
	}{
		{"zero is exhausted", 0, LevelExhausted},
		{"negative is exhausted", -1, LevelExhausted},
		{"one warns", 1, LevelWarning},
		{"threshold warns", threshold, LevelWarning},
		{"threshold plus one is neutral", threshold + 1, LevelNeutral},
		{"well above is neutral", 50, LevelNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LevelFor(tc.remaining, threshold); got != tc.want {
				t.Fatalf("LevelFor(%d, %d) = %v, want %v", tc.remaining, threshold, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	s := State{Remaining: 60, Total: 50}.Clamp()
	if s.Remaining != 60 || s.Total != 60 {
		t.Fatalf("expected total raised to remaining, got %+v", s)
	}

	s = State{Remaining: -3, Total: 50}.Clamp()
	if s.Remaining != 0 {
		t.Fatalf("expected negative remaining clamped to 0, got %d", s.Remaining)
	}

	s = State{Remaining: 10, Total: 50}.Clamp()
	if s.Remaining != 10 || s.Total != 50 {
		t.Fatalf("in-range state should be unchanged, got %+v", s)
	}
}

func TestClampMissingTotal(t *testing.T) {
	s := State{Remaining: 12, Total: 0}.Clamp()
	if s.Remaining != 12 || s.Total != 12 {
		t.Fatalf("remaining must survive a missing total, got %+v", s)
	}
	if s.Exhausted() {
		t.Fatal("a user with quota left must not read as exhausted")
	}
}

func TestExhausted(t *testing.T) {
	if (State{Remaining: 1, Total: 50}).Exhausted() {
		t.Fatal("remaining 1 should not be exhausted")
	}
	if !(State{Remaining: 0, Total: 50}).Exhausted() {
		t.Fatal("remaining 0 should be exhausted")
	}
}
