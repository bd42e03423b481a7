package token_test

import (
	"fmt"
	"testing"

	"github.com/go-jsonkit/jsontok/token"
)

// ExampleFile demonstrates building up a File's line table incrementally, the
// way a reader does as it scans forward, then mapping positions back to
// line/column pairs.
func ExampleFile() {
	input := "＃〄 - Hello 世界 1<\ndéjà vu 2<"
	f := token.NewFile("INPUT")
	for i, r := range input {
		if r == '\n' {
			f.AddLine(token.Pos(i+1), 2)
		}
	}
	fmt.Println(f.Position(token.Pos(0)))
	// first rune after the newline
	for i, r := range input {
		if r == '\n' {
			fmt.Println(f.Position(token.Pos(i + 1)))
			break
		}
	}
	// Output:
	// INPUT:1:1
	// INPUT:2:1
}

func TestFilePosition(t *testing.T) {
	f := token.NewFile("")
	input := "ab\ncd\nef"
	line := 1
	for i, r := range input {
		if r == '\n' {
			line++
			f.AddLine(token.Pos(i+1), line)
		}
	}
	tests := []struct {
		pos  token.Pos
		line int
		col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		p := f.Position(tt.pos)
		if p.Line != tt.line || p.Column != tt.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.pos, p.Line, p.Column, tt.line, tt.col)
		}
	}
}
