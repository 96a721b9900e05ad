package formats_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/levels/formats"
	"github.com/vovakirdan/hexpop/internal/hex"
)

func TestParseGridCodes(t *testing.T) {
	g, err := formats.ParseGrid("a.zR\n BS.\n", 1)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	testCases := []struct {
		o    hex.OffsetCoord
		want board.Ball
	}{
		{hex.O(0, 0), board.Colored(0)},
		{hex.O(2, 0), board.Colored(25)},
		{hex.O(3, 0), board.Rainbow},
		{hex.O(0, 1), board.Bomb},
		{hex.O(1, 1), board.Stone},
	}
	for _, tc := range testCases {
		if got, ok := g.Cells[tc.o]; !ok || got != tc.want {
			t.Errorf("cell %v = %v (present %v), want %v", tc.o, got, ok, tc.want)
		}
	}
	if _, ok := g.Cells[hex.O(1, 0)]; ok {
		t.Error("'.' should leave the cell empty")
	}
	if len(g.Cells) != 5 {
		t.Errorf("expected 5 cells, got %d", len(g.Cells))
	}
	if g.MaxColor != 25 {
		t.Errorf("MaxColor = %d, want 25", g.MaxColor)
	}
}

func TestParseGridShape(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		width int
		rows  int
		shave bool
	}{
		{"staggered", "aaaa\n aaa\naaaa\n", 4, 3, true},
		{"full odd rows", "aaaa\naaaa\n", 4, 2, false},
		{"single row", "aaa", 3, 1, false},
		{"ragged", "aa\n aaa\na\n", 3, 3, false},
		{"blank edges trimmed", "\n\n  ab\n b\n\n", 2, 2, true},
		{"inner empty row", "ab\n\nab\n", 2, 3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := formats.ParseGrid(tc.text, 1)
			if err != nil {
				t.Fatalf("ParseGrid failed: %v", err)
			}
			if g.Width != tc.width || g.Rows != tc.rows || g.ShaveOddRows != tc.shave {
				t.Errorf("got width %d rows %d shave %v, want %d %d %v",
					g.Width, g.Rows, g.ShaveOddRows, tc.width, tc.rows, tc.shave)
			}
		})
	}
}

func TestParseGridErrorPosition(t *testing.T) {
	_, err := formats.ParseGrid("abc\n a#b\n", 10)
	if err == nil {
		t.Fatal("expected error for unknown code")
	}

	var pe *formats.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if pe.Line != 11 || pe.Column != 3 || pe.Code != '#' {
		t.Errorf("got %+v, want line 11 column 3 code '#'", pe)
	}
}

func TestParseText(t *testing.T) {
	data := []byte("# id: t1\n# Name: Test One\n# colors: 3\n# a plain comment\nab\n ba\n")
	lvl, err := formats.ParseText(data)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if lvl.ID != "t1" || lvl.Name != "Test One" || lvl.Colors != 3 {
		t.Errorf("unexpected header %q %q %d", lvl.ID, lvl.Name, lvl.Colors)
	}
	if lvl.Grid.Rows != 2 || len(lvl.Grid.Cells) != 4 {
		t.Errorf("unexpected grid %+v", lvl.Grid)
	}
}

func TestParseTextErrorLine(t *testing.T) {
	_, err := formats.ParseText([]byte("# id: x\n\nab\n a?\n"))

	var pe *formats.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 4 || pe.Column != 3 {
		t.Errorf("got line %d column %d, want 4 and 3", pe.Line, pe.Column)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte("id: y1\nname: Yaml\ncolors: 2\nrows: |\n  aabb\n   ab.\n")
	lvl, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "y1" || lvl.Name != "Yaml" || lvl.Colors != 2 {
		t.Errorf("unexpected header %q %q %d", lvl.ID, lvl.Name, lvl.Colors)
	}
	if lvl.Grid.Width != 4 || !lvl.Grid.ShaveOddRows || len(lvl.Grid.Cells) != 6 {
		t.Errorf("unexpected grid %+v", lvl.Grid)
	}
}

func TestParseYAMLErrorLine(t *testing.T) {
	data := []byte("id: y2\nrows: |\n  ab\n  a!\n")
	_, err := formats.ParseYAML(data)

	var pe *formats.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 4 {
		t.Errorf("got line %d, want 4", pe.Line)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := formats.ParseYAML([]byte("id: [unclosed")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestEncodeParses(t *testing.T) {
	g, err := formats.ParseGrid("aRbB\n S.a\nc..d\n", 1)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	text := formats.Encode(g.Cells, g.Width, g.Rows, g.ShaveOddRows)
	back, err := formats.ParseGrid(text, 1)
	if err != nil {
		t.Fatalf("re-parse failed: %v\n%s", err, text)
	}
	if len(back.Cells) != len(g.Cells) {
		t.Fatalf("cell count changed: %d -> %d", len(g.Cells), len(back.Cells))
	}
	for o, ball := range g.Cells {
		if back.Cells[o] != ball {
			t.Errorf("cell %v changed: %v -> %v", o, ball, back.Cells[o])
		}
	}
}
