// Command schemagen writes the JSON Schema for expression suite files.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "configs/suites", "Output directory for generated schemas")
	flag.Parse()

	if err := generate(*outputDir); err != nil {
		slog.Error("Failed to generate schema", "error", err)
		os.Exit(1)
	}
}

func generate(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	out, err := schema.NewGenerator().GenerateJSONSchema(suite.TestSuite{})
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, "suite.schema.json")
	if err := os.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
		return err
	}

	slog.Info("Generated JSON schema", "path", path)
	return nil
}
