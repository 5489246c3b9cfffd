package morris

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	g := NewGame(White)
	for _, p := range []Point{A7, D5, G1} {
		if _, err := g.Place(p); err != nil {
			t.Fatal(err)
		}
	}
	want := strings.Join([]string{
		"7 W-----------.-----------.",
		"  |           |           |",
		"6 |   .-------.-------.   |",
		"  |   |       |       |   |",
		"5 |   |   .---B---.   |   |",
		"  |   |   |       |   |   |",
		"4 .---.---.       .---.---.",
		"  |   |   |       |   |   |",
		"3 |   |   .---.---.   |   |",
		"  |   |       |       |   |",
		"2 |   .-------.-------.   |",
		"  |           |           |",
		"1 .-----------.-----------W",
		"  a   b   c   d   e   f   g",
	}, "\n")
	b := g.Board()
	if got := b.Render(Glyphs{Empty: ".", White: "W", Black: "B"}); got != want {
		t.Fatalf("render got:\n%s\nwant:\n%s", got, want)
	}
	if s := g.String(); !strings.HasPrefix(s, "white: 7 free, 2 placed, at [a7 g1]\nblack: 8 free, 1 placed, at [d5]\n7 ○") {
		t.Fatalf("game string got:\n%s", s)
	}
}
