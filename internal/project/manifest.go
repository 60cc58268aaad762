package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FormatConfig is the optional `[format]` table of ori.toml. It is decoded
// into Manifest.Format only; `ori format` does not read it and formats with
// the default format.Options (internal/project stays independent of
// internal/format so the manifest schema can't accidentally grow a
// circular import).
type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

// Manifest is the decoded ori.toml project manifest: a module name, an
// optional override for the ArcIrCache directory, and formatter defaults.
// Per §6, this is deliberately a much smaller schema than the teacher's
// surge.toml ([package]/[run]/[modules] package-manager sections) - see
// DESIGN.md for why the dependency-installation machinery was dropped
// rather than adapted.
type Manifest struct {
	Module   string       `toml:"module"`
	CacheDir string       `toml:"cache_dir"`
	Format   FormatConfig `toml:"format"`
}

// LoadManifest parses the ori.toml at path.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}
