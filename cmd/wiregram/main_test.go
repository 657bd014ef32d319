package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/wiregram/wiregram/internal/align"
	"github.com/wiregram/wiregram/internal/vocab"
)

func cellsSymbol(t *testing.T) *vocab.Node {
	t.Helper()
	sym := vocab.NewSymbol("ping")
	head := vocab.NewField("head", vocab.NewSizePattern(2, 2))
	tail := vocab.NewField("tail", vocab.NewSizePattern(1, 1))
	if err := sym.SetChildren([]*vocab.Node{head, tail}); err != nil {
		t.Fatalf("SetChildren: %v", err)
	}
	if err := sym.SetAligner(align.New()); err != nil {
		t.Fatalf("SetAligner: %v", err)
	}
	if err := sym.SetMessages([][]byte{{0xaa, 0xbb, 0x01}, {0xcc, 0xdd, 0x02}}); err != nil {
		t.Fatalf("SetMessages: %v", err)
	}
	return sym
}

func TestPrintCellsRaw(t *testing.T) {
	sym := cellsSymbol(t)

	var buf bytes.Buffer
	if err := printCells(&buf, sym, false, false); err != nil {
		t.Fatalf("printCells: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %d lines: %q", len(lines), out)
	}
	if lines[0] != "head  tail" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "aabb  01" || lines[2] != "ccdd  02" {
		t.Fatalf("unexpected rows: %q %q", lines[1], lines[2])
	}
}

func TestPrintCellsEncoded(t *testing.T) {
	sym := cellsSymbol(t)

	var buf bytes.Buffer
	if err := printCells(&buf, sym, true, false); err != nil {
		t.Fatalf("printCells: %v", err)
	}

	if !strings.Contains(buf.String(), "aabb  01") {
		t.Fatalf("expected hex text cells, got %q", buf.String())
	}
	for _, leaf := range sym.Leaves() {
		if len(leaf.EncodingFunctions()) == 0 {
			t.Fatalf("encoding stage not attached to %s", leaf.Name())
		}
	}
}

func TestPrintCellsColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	sym := cellsSymbol(t)

	var buf bytes.Buffer
	if err := printCells(&buf, sym, true, true); err != nil {
		t.Fatalf("printCells: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected color escapes in output, got %q", buf.String())
	}
	for _, leaf := range sym.Leaves() {
		if len(leaf.VisualizationFunctions()) == 0 {
			t.Fatalf("highlight stage not attached to %s", leaf.Name())
		}
	}
}
