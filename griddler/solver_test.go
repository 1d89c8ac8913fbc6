package griddler

import (
	"testing"
)

// helperRows reads the whole grid back as row strings.
func helperRows(g *Grid) []string {
	ret := make([]string, g.Height())
	for y := range ret {
		ret[y] = g.Row(y).String()
	}
	return ret
}

func TestSolveSimple(t *testing.T) {
	g, err := NewGrid(
		[][]Block{
			helperBlocks("#", 1, "#", 1),
			helperBlocks("#", 2),
			helperBlocks("#", 1),
		},
		[][]Block{
			helperBlocks("#", 2),
			helperBlocks("#", 1),
			helperBlocks("#", 1, "#", 1),
		},
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	status, err := Solve(g, Options{})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if status != Solved {
		t.Fatalf("Solve status: got %v, expected %v", status, Solved)
	}
	expected := []string{"# #", "## ", "  #"}
	got := helperRows(g)
	for y := range expected {
		if got[y] != expected[y] {
			t.Errorf("row %d: got %q, expected %q", y, got[y], expected[y])
		}
	}
}

func TestSolveStuck(t *testing.T) {
	// two mirror-image solutions, so per-line propagation can
	// never commit to either
	g, err := NewGrid(
		[][]Block{helperBlocks("#", 1), helperBlocks("#", 1)},
		[][]Block{helperBlocks("#", 1), helperBlocks("#", 1)},
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	status, err := Solve(g, Options{BruteForce: true})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if status != Stuck {
		t.Errorf("Solve status: got %v, expected %v", status, Stuck)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if g.Get(x, y) != ValUnknown {
				t.Errorf("cell (%d, %d) resolved to %v in an ambiguous puzzle", x, y, g.Get(x, y))
			}
		}
	}
}

func TestSolveContradictory(t *testing.T) {
	// row says filled, column says empty: no rule errors, the
	// solve just never completes
	g, err := NewGrid([][]Block{helperBlocks("#", 1)}, [][]Block{{}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	status, err := Solve(g, Options{BruteForce: true})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if status == Solved {
		t.Errorf("contradictory puzzle reported solved")
	}
}

func TestSolveMaxPasses(t *testing.T) {
	g, err := NewGrid(
		[][]Block{
			helperBlocks("#", 1, "#", 1),
			helperBlocks("#", 2),
			helperBlocks("#", 1),
		},
		[][]Block{
			helperBlocks("#", 2),
			helperBlocks("#", 1),
			helperBlocks("#", 1, "#", 1),
		},
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	status, err := Solve(g, Options{MaxPasses: 1})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if status != Running {
		t.Errorf("Solve status with exhausted budget: got %v, expected %v", status, Running)
	}
}

func TestSolveTrace(t *testing.T) {
	g, err := NewGrid(
		[][]Block{helperBlocks("#", 1)},
		[][]Block{helperBlocks("#", 1)},
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	passes := 0
	status, err := Solve(g, Options{Trace: func(g *Grid) { passes++ }})
	if err != nil || status != Solved {
		t.Fatalf("Solve: status %v, err %v", status, err)
	}
	if passes == 0 {
		t.Errorf("trace hook never called")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Running:     "running",
		Solved:      "solved",
		Stuck:       "stuck",
		Status(-1):  "unknown",
		Status(100): "unknown",
	}
	for status, expected := range cases {
		if status.String() != expected {
			t.Errorf("Status(%d).String(): got %q, expected %q", status, status.String(), expected)
		}
	}
}
