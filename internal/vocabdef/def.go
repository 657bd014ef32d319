// Package vocabdef owns TOML symbol definitions and their translation
// into vocab trees.
//
// Ownership boundary:
// - definition file shape and validation
// - tree construction from a definition
// - definition templates for scaffolding
//
// A definition is a builder input, not a persistence format for live
// trees.
package vocabdef

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/wiregram/wiregram/internal/vocab"
)

// SymbolDef is the root of a definition file.
type SymbolDef struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Fields      []FieldDef `toml:"fields"`
}

// FieldDef declares one field. Exactly one shape must be set: a fixed
// hex constant, a fixed size, a size range, or nested fields.
type FieldDef struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Layer       bool       `toml:"layer"`
	Fixed       string     `toml:"fixed"`
	Size        int        `toml:"size"`
	MinSize     int        `toml:"min_size"`
	MaxSize     int        `toml:"max_size"`
	Alphabet    string     `toml:"alphabet"`
	Fields      []FieldDef `toml:"fields"`
}

// Load reads and validates a definition file.
func Load(path string) (SymbolDef, error) {
	var def SymbolDef
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return SymbolDef{}, fmt.Errorf("vocabdef: load %s: %w", path, err)
	}
	if err := Validate(def); err != nil {
		return SymbolDef{}, err
	}
	log.Debug().Str("path", path).Str("symbol", def.Name).Int("fields", len(def.Fields)).Msg("definition loaded")
	return def, nil
}

// Validate checks a definition for shape errors before any tree is
// built.
func Validate(def SymbolDef) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("vocabdef: symbol name is required")
	}
	if len(def.Fields) == 0 {
		return fmt.Errorf("vocabdef: symbol %q has no fields", def.Name)
	}
	for i, f := range def.Fields {
		if err := validateField(fmt.Sprintf("fields[%d]", i), f); err != nil {
			return err
		}
	}
	return nil
}

func validateField(path string, f FieldDef) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("vocabdef: %s: name is required", path)
	}
	shapes := 0
	if f.Fixed != "" {
		shapes++
	}
	if f.Size > 0 {
		shapes++
	}
	if f.MinSize > 0 || f.MaxSize > 0 {
		shapes++
	}
	if len(f.Fields) > 0 {
		shapes++
	}
	if shapes != 1 {
		return fmt.Errorf("vocabdef: %s (%s): exactly one of fixed, size, min_size/max_size or fields is required", path, f.Name)
	}
	if f.Fixed != "" {
		if _, err := hex.DecodeString(f.Fixed); err != nil {
			return fmt.Errorf("vocabdef: %s (%s): fixed is not valid hex: %w", path, f.Name, err)
		}
	}
	if f.MinSize > 0 && f.MaxSize == 0 {
		return fmt.Errorf("vocabdef: %s (%s): max_size is required with min_size", path, f.Name)
	}
	if f.MaxSize > 0 && f.MinSize > f.MaxSize {
		return fmt.Errorf("vocabdef: %s (%s): min_size %d exceeds max_size %d", path, f.Name, f.MinSize, f.MaxSize)
	}
	if f.Layer && len(f.Fields) == 0 {
		return fmt.Errorf("vocabdef: %s (%s): a layer requires nested fields", path, f.Name)
	}
	for i, child := range f.Fields {
		if err := validateField(fmt.Sprintf("%s.fields[%d]", path, i), child); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs a symbol tree from a validated definition.
func Build(def SymbolDef) (*vocab.Node, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	sym := vocab.NewSymbol(def.Name)
	sym.SetDescription(def.Description)
	for _, f := range def.Fields {
		child, err := buildField(f)
		if err != nil {
			return nil, err
		}
		if err := sym.AppendChild(child); err != nil {
			return nil, err
		}
	}
	return sym, nil
}

func buildField(f FieldDef) (*vocab.Node, error) {
	var node *vocab.Node
	if f.Layer {
		node = vocab.NewLayer(f.Name)
	} else {
		node = vocab.NewField(f.Name, fieldPattern(f))
	}
	node.SetDescription(f.Description)
	for _, child := range f.Fields {
		built, err := buildField(child)
		if err != nil {
			return nil, err
		}
		if err := node.AppendChild(built); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func fieldPattern(f FieldDef) *vocab.Pattern {
	switch {
	case f.Fixed != "":
		// Validate guarantees the hex decodes.
		value, _ := hex.DecodeString(f.Fixed)
		return vocab.NewFixedPattern(value)
	case f.Size > 0:
		if f.Alphabet != "" {
			return vocab.NewAlphabetPattern(f.Size, f.Size, []byte(f.Alphabet))
		}
		return vocab.NewSizePattern(f.Size, f.Size)
	case f.MinSize > 0 || f.MaxSize > 0:
		if f.Alphabet != "" {
			return vocab.NewAlphabetPattern(f.MinSize, f.MaxSize, []byte(f.Alphabet))
		}
		return vocab.NewSizePattern(f.MinSize, f.MaxSize)
	default:
		return nil
	}
}
