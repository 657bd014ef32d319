package main

import (
	"flag"
	"log"

	"github.com/wiregram/wiregram/internal/vocabdef"
)

func main() {
	output := flag.String("output", "symbol.toml", "output path for the definition template")
	validate := flag.Bool("validate", false, "validate an existing definition file")
	input := flag.String("input", "", "definition path for validation (defaults to -output)")
	force := flag.Bool("force", false, "overwrite an existing definition file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		if _, err := vocabdef.Load(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated definition at %s", path)
		return
	}

	if err := vocabdef.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote definition template to %s", *output)
}
