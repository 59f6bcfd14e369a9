package logger

import (
	"testing"
	"time"

	"github.com/cenkalti/log"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	rec := &log.Record{
		Time:       time.Date(2024, 2, 28, 18, 15, 57, 0, time.UTC),
		Level:      log.INFO,
		LoggerName: "rangebench",
		Filename:   "/src/cmd/rangebench/main.go",
		Line:       42,
		Message:    "loaded config",
	}

	require.Equal(t,
		"18:15:57.000 INFO     rangebench: loaded config (main.go:42)",
		formatter{}.Format(rec),
	)
}
