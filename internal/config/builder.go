package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStrictMoves enables or disables legality checking on move execution.
func (b *ConfigBuilder) WithStrictMoves(enabled bool) *ConfigBuilder {
	b.cfg.StrictMoves = enabled
	return b
}

// WithShowDestinations enables printing destinations after each move.
func (b *ConfigBuilder) WithShowDestinations(enabled bool) *ConfigBuilder {
	b.cfg.ShowDestinations = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartPlacement sets the FEN piece placement the board starts from.
func (b *ConfigBuilder) WithStartPlacement(placement string) *ConfigBuilder {
	b.cfg.StartPlacement = placement
	return b
}

// WithOutputFormat sets the board rendering format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Output.SquareSize = size
	return b
}

// WithSVGFile sets the file that receives the final board as SVG.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithOutputFile sets the output writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
