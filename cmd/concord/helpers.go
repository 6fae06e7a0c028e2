package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ShayCichocki/concord/internal/config"
	"github.com/ShayCichocki/concord/internal/conformance"
	"github.com/ShayCichocki/concord/internal/shape"
	"github.com/ShayCichocki/concord/internal/vocab"
)

// loadRegistry returns the operand registry: the configured YAML table when
// one is set, the built-in table otherwise.
func loadRegistry(cfg *config.Config) (*vocab.Registry, error) {
	if cfg != nil && cfg.Vocab.OperandTable != "" {
		reg, err := vocab.LoadFile(cfg.Vocab.OperandTable)
		if err != nil {
			return nil, fmt.Errorf("load operand table: %w", err)
		}
		return reg, nil
	}
	return vocab.Default(), nil
}

// buildEngine assembles the conformance engine from configuration.
func buildEngine(cfg *config.Config) (*conformance.Engine, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return conformance.NewEngine(shape.Default(reg), reg), nil
}

// printStatus prints a colored status symbol followed by a message.
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}

// fatalf prints an error to stderr and exits.
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// severityColor maps a violation severity to a display color.
func severityColor(sev conformance.Severity) color.Attribute {
	if sev == conformance.SeverityWarning {
		return color.FgYellow
	}
	return color.FgRed
}
