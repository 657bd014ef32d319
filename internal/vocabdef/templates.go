package vocabdef

import (
	"fmt"
	"os"
)

// WriteTemplate writes the scaffold definition to path. An existing file
// is preserved unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("vocabdef: definition already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(symbolTemplate), 0o600)
}

const symbolTemplate = `name = "ping"
description = "ICMP-style echo request"

[[fields]]
name = "type"
fixed = "08"

[[fields]]
name = "code"
fixed = "00"

[[fields]]
name = "header"
layer = true

  [[fields.fields]]
  name = "identifier"
  size = 2

  [[fields.fields]]
  name = "sequence"
  size = 2

[[fields]]
name = "payload"
min_size = 0
max_size = 56
`
