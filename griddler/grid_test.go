package griddler

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewGridErrors(t *testing.T) {
	// a zero count is rejected, identifying the line
	_, err := NewGrid(
		[][]Block{{}, {Block{Value: Value(2), Count: 0}}},
		[][]Block{{}, {}},
	)
	if err == nil {
		t.Fatalf("zero count accepted")
	}
	e, ok := err.(Error)
	if !ok {
		t.Fatalf("zero count error has type %T, expected Error", err)
	}
	if e.Condition != TooSmallCondition {
		t.Errorf("zero count condition: got %v, expected %v", e.Condition, TooSmallCondition)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("zero count error doesn't name the line: %q", err.Error())
	}

	// a non-color block value is rejected
	_, err = NewGrid(
		[][]Block{{}},
		[][]Block{{Block{Value: ValBlank, Count: 1}}},
	)
	if err == nil {
		t.Fatalf("non-color block value accepted")
	}
	if !strings.Contains(err.Error(), "column 0") {
		t.Errorf("non-color value error doesn't name the line: %q", err.Error())
	}

	// blocks that can't fit their line are rejected
	_, err = NewGrid(
		[][]Block{helperBlocks("#", 3)},
		[][]Block{{}, {}},
	)
	if err == nil {
		t.Fatalf("overfull row accepted")
	}
	e, ok = err.(Error)
	if !ok || e.Condition != OverfullCondition {
		t.Errorf("overfull condition: got %v", err)
	}

	// the same-color gap counts against the fit
	_, err = NewGrid(
		[][]Block{helperBlocks("#", 1, "#", 1)},
		[][]Block{{}, {}},
	)
	if err == nil {
		t.Errorf("two same-colored blocks accepted in a line of two cells")
	}
	if _, err := NewGrid(
		[][]Block{helperBlocks("#", 1, "%", 1)},
		[][]Block{{}, {}},
	); err != nil {
		t.Errorf("two color-changing blocks rejected in a line of two cells: %v", err)
	}
}

func TestGridAccessors(t *testing.T) {
	g, err := NewGrid([][]Block{{}, {}}, [][]Block{{}, {}, {}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("got %dx%d grid, expected 3x2", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) != ValUnknown {
				t.Errorf("new grid cell (%d, %d) is %v, expected unknown", x, y, g.Get(x, y))
			}
		}
	}

	g.volume = []Value{1, 2, 3, 4, 5, 6}
	if g.Get(0, 0) != Value(1) || g.Get(1, 0) != Value(2) || g.Get(2, 1) != Value(6) {
		t.Errorf("Get read the wrong cells: %v %v %v", g.Get(0, 0), g.Get(1, 0), g.Get(2, 1))
	}
	if !reflect.DeepEqual(g.Row(1), Line{4, 5, 6}) {
		t.Errorf("Row(1): got %v", g.Row(1))
	}
	if !reflect.DeepEqual(g.Column(1), Line{2, 5}) {
		t.Errorf("Column(1): got %v", g.Column(1))
	}

	// rows and columns are copies, not aliases
	row := g.Row(0)
	row[0] = Value(9)
	if g.Get(0, 0) != Value(1) {
		t.Errorf("Row aliased grid storage")
	}
}

func TestGridApply(t *testing.T) {
	g, err := NewGrid(
		[][]Block{helperBlocks("#", 1), {}, {}},
		[][]Block{{}, {}},
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	// bottom row already resolved
	g.volume = append(make(Line, 4), ValBlank, ValBlank)

	type call struct {
		blocks []Block
		line   string
	}
	var calls []call
	outputs := []Line{
		// resolve the top left cell only
		{ValBlank, ValUnknown},
		// resolve the full second row
		{ValBlank, ValBlank},
		// third call is the second column
		{ValBlank, ValBlank, ValBlank},
	}
	stub := Rule{Name: "stub", Apply: func(blocks []Block, line Line) Line {
		calls = append(calls, call{blocks, line.String()})
		out := outputs[0]
		outputs = outputs[1:]
		return out
	}}

	progress, err := g.Apply(stub)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !progress {
		t.Errorf("Apply reported no progress")
	}
	for i, val := range g.volume {
		if val != ValBlank {
			t.Errorf("cell %d is %v after apply, expected blank", i, val)
		}
	}

	// The resolved bottom row and (after the row writes) the
	// resolved first column must have been skipped.
	expected := []call{
		{helperBlocks("#", 1), ".."},
		{[]Block{}, ".."},
		{[]Block{}, ".  "},
	}
	if len(calls) != len(expected) {
		t.Fatalf("got %d rule calls, expected %d: %v", len(calls), len(expected), calls)
	}
	for i := range calls {
		if !blocksEqual(calls[i].blocks, expected[i].blocks) || calls[i].line != expected[i].line {
			t.Errorf("call %d: got (%v, %q), expected (%v, %q)",
				i, calls[i].blocks, calls[i].line, expected[i].blocks, expected[i].line)
		}
	}

	// a fully resolved grid means no calls at all
	calls = nil
	progress, err = g.Apply(stub)
	if err != nil || progress {
		t.Errorf("second apply: progress %v, err %v", progress, err)
	}
	if len(calls) != 0 {
		t.Errorf("rule called %d times on a resolved grid", len(calls))
	}
}

func TestGridApplyConflict(t *testing.T) {
	g, err := NewGrid([][]Block{helperBlocks("#", 1)}, [][]Block{{}, {}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.volume = Line{Value(2), ValUnknown}

	unsound := Rule{Name: "unsound", Apply: func(_ []Block, line Line) Line {
		out := copyLine(line)
		for i := range out {
			out[i] = ValBlank
		}
		return out
	}}
	_, err = g.Apply(unsound)
	if err == nil {
		t.Fatalf("conflicting overwrite not detected")
	}
	e, ok := err.(Error)
	if !ok {
		t.Fatalf("conflict error has type %T, expected Error", err)
	}
	if e.Condition != ConflictCondition {
		t.Errorf("conflict condition: got %v", e.Condition)
	}
	if !reflect.DeepEqual(e.Values[:2], ErrorData{0, 0}) {
		t.Errorf("conflict coordinates: got %v", e.Values)
	}
}

func TestGridSolved(t *testing.T) {
	g, err := NewGrid([][]Block{}, [][]Block{})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if !g.Solved() {
		t.Errorf("empty grid not solved")
	}

	g, err = NewGrid([][]Block{helperBlocks("#", 1)}, [][]Block{helperBlocks("#", 1)})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Solved() {
		t.Errorf("all-unknown grid reported solved")
	}
	g.volume[0] = Value(2)
	if !g.Solved() {
		t.Errorf("completed 1x1 grid not solved")
	}

	// A grid with no unknown cells left is NOT solved unless the
	// runs match the specification.
	g, err = NewGrid([][]Block{{}, {}}, [][]Block{{}, {}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.volume = Line{ValBlank, ValBlank, ValBlank, ValBlank}
	if !g.Solved() {
		t.Errorf("all-blank empty-spec grid not solved")
	}
	g.volume[0] = Value(2)
	if g.Solved() {
		t.Errorf("grid violating its blocks reported solved")
	}
}

// A 1x1 puzzle resolves in a single rule application.
func TestGridOneShot(t *testing.T) {
	g, err := NewGrid([][]Block{helperBlocks("#", 1)}, [][]Block{helperBlocks("#", 1)})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	progress, err := g.Apply(helperRule(t, "Fill overlap"))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !progress || g.Get(0, 0) != Value(2) || !g.Solved() {
		t.Errorf("1x1 grid after fill overlap: progress %v, cell %v, solved %v",
			progress, g.Get(0, 0), g.Solved())
	}
}
