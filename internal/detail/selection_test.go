package detail

import "testing"

func TestNormalizeOrdersEndpoints(t *testing.T) {
	sel := Selection{Anchor: Position{Line: 1, Col: 2}, Cursor: Position{Line: 0, Col: 5}}
	start, end := sel.Normalize()
	if start != (Position{Line: 0, Col: 5}) || end != (Position{Line: 1, Col: 2}) {
		t.Fatalf("unexpected normalization: %+v %+v", start, end)
	}

	forward := Selection{Anchor: Position{Line: 0, Col: 5}, Cursor: Position{Line: 1, Col: 2}}
	fs, fe := forward.Normalize()
	if fs != start || fe != end {
		t.Fatal("normalization should be direction-independent")
	}
}

func TestNormalizeSameLineOrdersColumns(t *testing.T) {
	sel := Selection{Anchor: Position{Line: 0, Col: 7}, Cursor: Position{Line: 0, Col: 3}}
	start, end := sel.Normalize()
	if start.Col != 3 || end.Col != 7 {
		t.Fatalf("unexpected columns: %d..%d", start.Col, end.Col)
	}
}

func TestExtractSingleLineIsInclusive(t *testing.T) {
	lines := []string{"alpha beta"}
	sel := Selection{Anchor: Position{Line: 0, Col: 0}, Cursor: Position{Line: 0, Col: 4}}
	if got := sel.Extract(lines); got != "alpha" {
		t.Fatalf("expected %q, got %q", "alpha", got)
	}
}

func TestExtractAcrossLinesInsertsBreaks(t *testing.T) {
	lines := []string{"alpha beta", "gamma delta"}
	sel := Selection{Anchor: Position{Line: 0, Col: 6}, Cursor: Position{Line: 1, Col: 4}}
	if got := sel.Extract(lines); got != "beta\ngamma" {
		t.Fatalf("expected %q, got %q", "beta\ngamma", got)
	}
}

func TestExtractThreeLinesKeepsMiddleWhole(t *testing.T) {
	lines := []string{"one", "two", "three"}
	sel := Selection{Anchor: Position{Line: 0, Col: 1}, Cursor: Position{Line: 2, Col: 2}}
	if got := sel.Extract(lines); got != "ne\ntwo\nthr" {
		t.Fatalf("expected %q, got %q", "ne\ntwo\nthr", got)
	}
}

func TestExtractBackwardSelectionMatchesForward(t *testing.T) {
	lines := []string{"alpha beta", "gamma delta"}
	forward := Selection{Anchor: Position{Line: 0, Col: 6}, Cursor: Position{Line: 1, Col: 4}}
	backward := Selection{Anchor: Position{Line: 1, Col: 4}, Cursor: Position{Line: 0, Col: 6}}
	if forward.Extract(lines) != backward.Extract(lines) {
		t.Fatal("extraction should not depend on entry order")
	}
}

func TestExtractClampsEndColumn(t *testing.T) {
	lines := []string{"ab"}
	sel := Selection{Anchor: Position{Line: 0, Col: 0}, Cursor: Position{Line: 0, Col: 99}}
	if got := sel.Extract(lines); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
}

func TestContains(t *testing.T) {
	sel := Selection{Anchor: Position{Line: 0, Col: 6}, Cursor: Position{Line: 2, Col: 2}}
	inside := []Position{{0, 6}, {1, 0}, {1, 99}, {2, 2}}
	for _, pos := range inside {
		if !sel.Contains(pos) {
			t.Fatalf("expected %+v inside", pos)
		}
	}
	outside := []Position{{0, 5}, {2, 3}, {3, 0}}
	for _, pos := range outside {
		if sel.Contains(pos) {
			t.Fatalf("expected %+v outside", pos)
		}
	}
}
