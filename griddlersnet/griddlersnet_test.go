package griddlersnet

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/ollij93/griddlers-solver/griddler"
)

// A cut-down copy of the script the archive serves, with the same
// shape around the puzzle object.
const fixtureScript = `var gpuzzles = gpuzzles || {};
var puzzle = {
	id: 42,
	topHeader:[[[2,2]],[[2,1]],[[2,1],[2,1]]],
	leftHeader:[[[2,1],[2,1]],[[2,2]],[[2,1]]],
	solution:"not relevant here"
}
puzzle.init();
`

func TestExtractPuzzle(t *testing.T) {
	puzzle, err := extractPuzzle(fixtureScript)
	if err != nil {
		t.Fatalf("extractPuzzle failed: %v", err)
	}
	if !strings.Contains(puzzle, "topHeader:") || !strings.Contains(puzzle, "leftHeader:") {
		t.Errorf("extracted puzzle body missing headers: %q", puzzle)
	}
	if strings.Contains(puzzle, "var puzzle") || strings.Contains(puzzle, "init()") {
		t.Errorf("extracted puzzle body includes surrounding script: %q", puzzle)
	}

	if _, err := extractPuzzle("no puzzle here"); err == nil {
		t.Errorf("script without a puzzle accepted")
	}
	if _, err := extractPuzzle("var puzzle = {\nnever closed"); err == nil {
		t.Errorf("unterminated puzzle accepted")
	}
}

func TestExtractHeader(t *testing.T) {
	puzzle, err := extractPuzzle(fixtureScript)
	if err != nil {
		t.Fatalf("extractPuzzle failed: %v", err)
	}

	top, err := extractHeader(puzzle, "topHeader")
	if err != nil {
		t.Fatalf("extractHeader(topHeader) failed: %v", err)
	}
	expected := [][][]int{{{2, 2}}, {{2, 1}}, {{2, 1}, {2, 1}}}
	if !reflect.DeepEqual(top, expected) {
		t.Errorf("topHeader: got %v, expected %v", top, expected)
	}

	left, err := extractHeader(puzzle, "leftHeader")
	if err != nil {
		t.Fatalf("extractHeader(leftHeader) failed: %v", err)
	}
	expected = [][][]int{{{2, 1}, {2, 1}}, {{2, 2}}, {{2, 1}}}
	if !reflect.DeepEqual(left, expected) {
		t.Errorf("leftHeader: got %v, expected %v", left, expected)
	}

	if _, err := extractHeader(puzzle, "bottomHeader"); err == nil {
		t.Errorf("missing attribute accepted")
	}
	if _, err := extractHeader("topHeader: notanarray", "topHeader"); err == nil {
		t.Errorf("non-array attribute accepted")
	}
	if _, err := extractHeader("topHeader:[[[2,junk]]]", "topHeader"); err == nil {
		t.Errorf("junk inside attribute accepted")
	}
	if _, err := extractHeader("topHeader:[[[2,1]]", "topHeader"); err == nil {
		t.Errorf("unterminated attribute accepted")
	}
}

func TestToGrid(t *testing.T) {
	g, err := ToGrid(
		[][][]int{{{2, 2}}, {{2, 1}}},
		[][][]int{{{2, 1}}, {{2, 2}}, {{2, 1}}},
	)
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if g.Width() != 2 || g.Height() != 3 {
		t.Errorf("got %dx%d grid, expected 2x3", g.Width(), g.Height())
	}
	expected := []griddler.Block{{Value: griddler.Value(2), Count: 2}}
	if !reflect.DeepEqual(g.ColBlocks()[0], expected) {
		t.Errorf("column 0 blocks: got %v, expected %v", g.ColBlocks()[0], expected)
	}

	// malformed header pairs are rejected
	if _, err := ToGrid([][][]int{{{2}}}, [][][]int{{}}); err == nil {
		t.Errorf("truncated header pair accepted")
	}
	// grid validation still applies
	if _, err := ToGrid([][][]int{{}}, [][][]int{{{2, 5}}}); err == nil {
		t.Errorf("overfull row accepted")
	}
}

func TestParseScript(t *testing.T) {
	g, err := ParseScript(fixtureScript)
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	status, err := griddler.Solve(g, griddler.Options{})
	if err != nil || status != griddler.Solved {
		t.Fatalf("Solve of fixture puzzle: status %v, err %v", status, err)
	}
	expected := []string{"# #", "## ", "  #"}
	for y := range expected {
		if got := g.Row(y).String(); got != expected[y] {
			t.Errorf("row %d: got %q, expected %q", y, got, expected[y])
		}
	}
}

func TestGetGrid(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("_gpuzzles_WAR_puzzles_id")
		fmt.Fprint(w, fixtureScript)
	}))
	defer server.Close()
	saved := baseURL
	baseURL = server.URL
	defer func() { baseURL = saved }()

	g, err := GetGrid(17)
	if err != nil {
		t.Fatalf("GetGrid failed: %v", err)
	}
	if gotID != "17" {
		t.Errorf("requested puzzle id %q, expected %q", gotID, "17")
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("got %dx%d grid, expected 3x3", g.Width(), g.Height())
	}
}

func TestGetGridServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()
	saved := baseURL
	baseURL = server.URL
	defer func() { baseURL = saved }()

	if _, err := GetGrid(17); err == nil {
		t.Errorf("server error not reported")
	}
}
