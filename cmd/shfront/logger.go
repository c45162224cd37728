package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is this CLI's package-level tracer for diagnostics below the
// level of a reported parse.Error (dialect resolution, token counts,
// verbose per-run tracing), following yaklabco-gomdlint's internal/logging
// package-level-default pattern, trimmed to the one logger this CLI needs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})
