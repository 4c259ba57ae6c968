package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/homecrew/homecrew-backend/internal/receipt"
)

// parse-receipt normalizes raw OCR text into structured expense fields and
// prints the result as JSON. Reads a file argument or stdin.
func main() {
	var (
		merchants = flag.String("merchants", "", "comma-separated known merchant names to snap against")
		pretty    = flag.Bool("pretty", true, "indent JSON output")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	var raw []byte
	var err error
	switch flag.NArg() {
	case 0:
		raw, err = io.ReadAll(os.Stdin)
	case 1:
		raw, err = os.ReadFile(flag.Arg(0))
	default:
		logger.Error("usage: parse-receipt [-merchants a,b,c] [file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	var known []string
	for _, m := range strings.Split(*merchants, ",") {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			known = append(known, trimmed)
		}
	}

	parsed := receipt.Parse(string(raw), receipt.Options{KnownMerchants: known})

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(parsed); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
