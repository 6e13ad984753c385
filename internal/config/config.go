package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/playlist"
)

const appName = "tracklist"

type Config struct {
	Icons           string            `koanf:"icons"`            // "nerd", "unicode", or "none"
	Locale          string            `koanf:"locale"`           // e.g. "de-DE"; empty reads LC_ALL/LC_TIME/LANG
	LibraryDB       string            `koanf:"library_db"`       // path of the library index
	Columns         []string          `koanf:"columns"`          // visible columns, in order
	IndicatorColumn string            `koanf:"indicator_column"` // column holding the queue badge
	Suffixes        map[string]string `koanf:"suffixes"`         // column -> unit suffix
	WriteTags       bool              `koanf:"write_tags"`       // store edits in the music files too

	Badge BadgeConfig `koanf:"badge"`
	View  ViewConfig  `koanf:"view"`
}

// BadgeConfig overrides the queue and stop badge look.
type BadgeConfig struct {
	BoxLength      int      `koanf:"box_length"`
	Border         *int     `koanf:"border"`
	Inset          int      `koanf:"inset"`
	GradientTop    string   `koanf:"gradient_top"` // #rrggbb
	GradientBottom string   `koanf:"gradient_bottom"`
	Outline        string   `koanf:"outline"`
	OpacityFloor   *float64 `koanf:"opacity_floor"`
	OpacitySteps   int      `koanf:"opacity_steps"`
}

// ViewConfig holds playlist table settings.
type ViewConfig struct {
	CurrentIndent   *int           `koanf:"current_indent"`
	MinRowHeight    int            `koanf:"min_row_height"`
	CompletionLimit int            `koanf:"completion_limit"`
	Widths          map[string]int `koanf:"widths"` // column -> width in cells
}

// DefaultColumns are shown when the config names none.
var DefaultColumns = []playlist.Column{
	playlist.ColumnTrack,
	playlist.ColumnTitle,
	playlist.ColumnArtist,
	playlist.ColumnAlbum,
	playlist.ColumnYear,
	playlist.ColumnLength,
	playlist.ColumnFiletype,
	playlist.ColumnBitrate,
	playlist.ColumnFilesize,
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LibraryDB != "" {
		cfg.LibraryDB = expandPath(cfg.LibraryDB)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tracklist/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLibraryDB returns the library index path, defaulting to the XDG data
// directory.
func (c *Config) GetLibraryDB() (string, error) {
	if c.LibraryDB != "" {
		return c.LibraryDB, nil
	}
	return xdg.DataFile(filepath.Join(appName, "library.db"))
}

// GetColumns returns the visible columns. Unknown and repeated names are
// skipped; an empty result falls back to DefaultColumns.
func (c *Config) GetColumns() []playlist.Column {
	var cols []playlist.Column
	seen := make(map[playlist.Column]bool)
	for _, name := range c.Columns {
		col, ok := playlist.ParseColumn(name)
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return DefaultColumns
	}
	return cols
}

// GetIndicatorColumn returns the column that carries the queue badge.
func (c *Config) GetIndicatorColumn() playlist.Column {
	if col, ok := playlist.ParseColumn(c.IndicatorColumn); ok {
		return col
	}
	return playlist.ColumnTitle
}

// GetSuffixes returns the configured unit suffixes by column.
func (c *Config) GetSuffixes() map[playlist.Column]string {
	out := make(map[playlist.Column]string, len(c.Suffixes))
	for name, suffix := range c.Suffixes {
		if col, ok := playlist.ParseColumn(name); ok {
			out[col] = suffix
		}
	}
	return out
}

// GetWidths returns the configured column widths. Non-positive widths are
// ignored.
func (c *Config) GetWidths() map[playlist.Column]int {
	out := make(map[playlist.Column]int, len(c.View.Widths))
	for name, w := range c.View.Widths {
		if col, ok := playlist.ParseColumn(name); ok && w > 0 {
			out[col] = w
		}
	}
	return out
}

// GetLocale returns the configured locale, then the environment's.
func (c *Config) GetLocale() cell.Locale {
	if c.Locale != "" {
		if loc, err := cell.ParseLocale(c.Locale); err == nil {
			return loc
		}
	}
	return cell.LocaleFromEnv()
}

// GetCurrentIndent returns the playing-row indent, 2 by default.
func (c *Config) GetCurrentIndent() int {
	if c.View.CurrentIndent == nil || *c.View.CurrentIndent < 0 {
		return 2
	}
	return *c.View.CurrentIndent
}

// GetMinRowHeight returns the minimum row height, 1 by default.
func (c *Config) GetMinRowHeight() int {
	return max(c.View.MinRowHeight, 1)
}

// GetCompletionLimit returns the suggestion cap; 0 means unlimited.
func (c *Config) GetCompletionLimit() int {
	return max(c.View.CompletionLimit, 0)
}

// GetBadgeConfig returns the badge settings with defaults applied.
// Colors left empty stay empty so the caller keeps its own defaults.
func (c *Config) GetBadgeConfig() BadgeConfig {
	cfg := c.Badge

	if cfg.BoxLength <= 0 {
		cfg.BoxLength = 3
	}
	if cfg.Border == nil || *cfg.Border < 0 {
		border := 1
		cfg.Border = &border
	}
	if cfg.Inset < 0 {
		cfg.Inset = 0
	}
	if cfg.OpacityFloor == nil || *cfg.OpacityFloor < 0 || *cfg.OpacityFloor > 1 {
		floor := 0.4
		cfg.OpacityFloor = &floor
	}
	if cfg.OpacitySteps <= 0 {
		cfg.OpacitySteps = 10
	}

	return cfg
}
