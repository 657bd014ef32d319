package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/wiregram/wiregram/internal/align"
	"github.com/wiregram/wiregram/internal/mutate"
	"github.com/wiregram/wiregram/internal/observability"
	"github.com/wiregram/wiregram/internal/vocab"
	"github.com/wiregram/wiregram/internal/vocab/functions"
	"github.com/wiregram/wiregram/internal/vocabdef"
)

func main() {
	defPath := flag.String("def", "", "symbol definition file (toml)")
	messagesPath := flag.String("messages", "", "captured messages, one hex string per line")
	cells := flag.Bool("cells", false, "print the aligned cell matrix for the loaded messages")
	encoded := flag.Bool("encoded", false, "print cells as hex text through the encoding pipeline")
	colored := flag.Bool("color", false, "highlight each column with its own color")
	generate := flag.Int("generate", 0, "number of messages to generate")
	mutator := flag.String("mutate", "", "mutation strategy for generation: bitflip|random")
	seed := flag.Uint64("seed", 1, "seed for the random mutation strategy")
	flag.Parse()

	observability.InitLogger("wiregram")

	if *defPath == "" {
		fmt.Fprintln(os.Stderr, "wiregram: -def is required")
		os.Exit(2)
	}

	def, err := vocabdef.Load(*defPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load definition")
	}
	sym, err := vocabdef.Build(def)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build symbol")
	}
	if err := sym.SetAligner(align.New()); err != nil {
		log.Fatal().Err(err).Msg("failed to attach aligner")
	}
	log.Info().Str("symbol", sym.Name()).Int("leaves", len(sym.Leaves())).Msg("symbol ready")

	if *messagesPath != "" {
		count, err := loadMessages(sym, *messagesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load messages")
		}
		log.Info().Str("path", *messagesPath).Int("messages", count).Msg("messages attached")
	}

	if *cells {
		if err := printCells(os.Stdout, sym, *encoded, *colored); err != nil {
			log.Fatal().Err(err).Msg("failed to align messages")
		}
	}

	if *generate > 0 {
		m, err := pickMutator(*mutator, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("unknown mutation strategy")
		}
		for i := 0; i < *generate; i++ {
			value, err := sym.Generate(m)
			if err != nil {
				log.Fatal().Err(err).Msg("generation failed")
			}
			fmt.Println(hex.EncodeToString(value))
		}
	}
}

func loadMessages(sym *vocab.Node, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		msg, err := hex.DecodeString(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", count+1, err)
		}
		if err := sym.AppendMessage(msg); err != nil {
			return 0, err
		}
		count++
	}
	return count, scanner.Err()
}

var cellPalette = []color.Attribute{
	color.FgCyan,
	color.FgYellow,
	color.FgGreen,
	color.FgMagenta,
}

func printCells(w io.Writer, sym *vocab.Node, encoded, colored bool) error {
	leaves := sym.Leaves()
	if encoded {
		for _, leaf := range leaves {
			leaf.SetEncodingFunctions([]vocab.EncodingFunction{functions.HexEncoding{}})
		}
	}
	if colored {
		for i, leaf := range leaves {
			leaf.SetVisualizationFunctions([]vocab.VisualizationFunction{
				functions.NewHighlight(cellPalette[i%len(cellPalette)]),
			})
		}
	}
	matrix, err := sym.Cells(encoded, colored, false)
	if err != nil {
		return err
	}
	names := make([]string, len(leaves))
	for i, leaf := range leaves {
		names[i] = leaf.Name()
	}
	fmt.Fprintln(w, strings.Join(names, "  "))
	for _, row := range matrix {
		parts := make([]string, len(row))
		for i, cell := range row {
			if encoded || colored {
				parts[i] = string(cell)
			} else {
				parts[i] = hex.EncodeToString(cell)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
	return nil
}

func pickMutator(name string, seed uint64) (vocab.Mutator, error) {
	switch name {
	case "":
		return nil, nil
	case "bitflip":
		return mutate.NewBitFlip(), nil
	case "random":
		return mutate.NewRandomBytes(0.2, seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
}
