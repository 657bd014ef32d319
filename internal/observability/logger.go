package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wiregram/wiregram/internal/logging"
)

// InitLogger configures the process-wide logger for a named tool and
// returns it. Level and formatting come from internal/logging, with env
// overrides applied.
func InitLogger(app string) zerolog.Logger {
	logging.ConfigureRuntime()
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    logging.NoColor(),
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
