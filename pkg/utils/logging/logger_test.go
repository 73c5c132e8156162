package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]logging.Format{
		"":        logging.FormatAuto,
		"auto":    logging.FormatAuto,
		"console": logging.FormatConsole,
		"JSON":    logging.FormatJSON,
	} {
		got, err := logging.ParseFormat(input)
		gt.NoError(t, err)
		gt.Equal(t, got, want)
	}

	_, err := logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("bogus"), slog.LevelInfo)
}

func TestAutoFormatUsesJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("Run started", "total", 2)
	logger.Debug("hidden")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Equal(t, entry["msg"], any("Run started"))
	gt.Equal(t, entry["total"], any(float64(2)))
}
