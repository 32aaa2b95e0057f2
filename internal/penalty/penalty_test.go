package penalty

import "testing"

func TestEvaluateByType(t *testing.T) {
	cases := []struct {
		name     string
		typ      Type
		mistakes int
		want     Outcome
	}{
		{"none", None, 1, Outcome{Message: "Try again!"}},
		{"points", Points, 1, Outcome{ScoreDeduction: 100, Message: "-100 points penalty!"}},
		{"points repeated", Points, 5, Outcome{ScoreDeduction: 100, Message: "-100 points penalty!"}},
		{"time", Time, 2, Outcome{TimeDeduction: 10, Message: "-10 seconds penalty!"}},
		{"strike one", Strikes, 1, Outcome{Message: "Strike 1/3"}},
		{"strike two", Strikes, 2, Outcome{Message: "Strike 2/3"}},
		{"strike three", Strikes, 3, Outcome{Terminates: true, Message: "Three strikes - Game Over!"}},
		{"strike four", Strikes, 4, Outcome{Terminates: true, Message: "Three strikes - Game Over!"}},
		{"unknown", Type("lava"), 1, Outcome{Message: "Try again!"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.typ, tc.mistakes, 500, 60)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestProgressiveDoubles(t *testing.T) {
	want := []int{50, 100, 200, 400, 800, 1600}
	for i, w := range want {
		n := i + 1
		got := Evaluate(Progressive, n, 0, 0)
		if got.ScoreDeduction != w {
			t.Fatalf("mistake %d: expected %d, got %d", n, w, got.ScoreDeduction)
		}
		if got.Terminates {
			t.Fatalf("progressive must not terminate")
		}
	}
	for n := 1; n <= 20; n++ {
		if got := Evaluate(Progressive, n, 0, 0).ScoreDeduction; got != 50*(1<<(n-1)) {
			t.Fatalf("mistake %d: expected %d, got %d", n, 50*(1<<(n-1)), got)
		}
	}
}

func TestProgressiveSaturates(t *testing.T) {
	big := Evaluate(Progressive, 1000, 0, 0).ScoreDeduction
	if big <= 0 {
		t.Fatalf("expected positive saturated deduction, got %d", big)
	}
	if got := Evaluate(Progressive, 0, 0, 0).ScoreDeduction; got != 0 {
		t.Fatalf("expected no deduction before the first mistake, got %d", got)
	}
}

func TestStrikesTerminatesOnlyAtThree(t *testing.T) {
	for n := 0; n <= 6; n++ {
		got := Evaluate(Strikes, n, 0, 0).Terminates
		if got != (n >= 3) {
			t.Fatalf("mistakes %d: terminates=%v", n, got)
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	for _, s := range Systems() {
		a := Evaluate(s.ID, 2, 120, 30)
		b := Evaluate(s.ID, 2, 120, 30)
		if a != b {
			t.Fatalf("%s: results differ: %+v vs %+v", s.ID, a, b)
		}
	}
}

func TestForDifficulty(t *testing.T) {
	cases := map[string]Type{
		"grade1":       None,
		"grade3":       None,
		"grade5":       None,
		"middle":       None,
		"high":         Points,
		"championship": Points,
		"unknown":      None,
	}
	for id, want := range cases {
		if got := ForDifficulty(id); got != want {
			t.Fatalf("%s: expected %s, got %s", id, want, got)
		}
	}
}

func TestParse(t *testing.T) {
	if got := Parse(" Strikes "); got != Strikes {
		t.Fatalf("expected strikes, got %s", got)
	}
	if got := Parse("lava"); got != None {
		t.Fatalf("expected fallback to none, got %s", got)
	}
	if _, err := ParseStrict("lava"); err == nil {
		t.Fatalf("expected error for unknown penalty")
	}
	if _, err := ParseStrict(""); err == nil {
		t.Fatalf("expected error for empty penalty")
	}
}

func TestSystemsCoverAllTypes(t *testing.T) {
	want := []Type{None, Points, Time, Strikes, Progressive}
	got := Systems()
	if len(got) != len(want) {
		t.Fatalf("expected %d systems, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("system %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}
