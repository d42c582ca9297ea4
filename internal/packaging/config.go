package packaging

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pspkit/cargo-psp/internal/paths"
)

// Packaging metadata. Every field is optional; nil means absent, which is
// distinct from an empty string or zero.
type Config struct {

	// Title shown in the XMB menu. Defaults to the binary name.
	Title *string `toml:"title"`

	// 24bit 144x80 PNG icon shown in the XMB menu.
	XMBIconPNG *string `toml:"xmb_icon_png"`

	// Animated icon shown in the XMB menu, a 29.97fps 144x80 PMF video.
	XMBIconPMF *string `toml:"xmb_icon_pmf"`

	// 24bit 480x272 PNG background shown in the XMB menu.
	XMBBackgroundPNG *string `toml:"xmb_background_png"`

	// Like XMBBackgroundPNG, drawn on top of it.
	XMBBackgroundOverlayPNG *string `toml:"xmb_background_overlay_png"`

	// ATRAC3 audio played in the XMB menu. Must be 66kbps, under 500KB and
	// under 55 seconds.
	XMBMusicAT3 *string `toml:"xmb_music_at3"`

	// PSAR data stored in the bundle.
	PSAR *string `toml:"psar"`

	// Product number, in the format ABCD-12345.
	DiscID *string `toml:"disc_id"`

	// Version of the game, e.g. "1.00".
	DiscVersion *string `toml:"disc_version"`

	// Language of the game. "JP" means Japanese.
	Language *string `toml:"language"`

	// Parental control level, 1-11.
	ParentalLevel *uint32 `toml:"parental_level"`

	// Minimum firmware version, e.g. "6.61".
	PSPSystemVer *string `toml:"psp_system_ver"`

	// Bitmask of allowed regions.
	Region *uint32 `toml:"region"`

	TitleJP *string `toml:"title_jp"`
	TitleFR *string `toml:"title_fr"`
	TitleES *string `toml:"title_es"`
	TitleDE *string `toml:"title_de"`
	TitleIT *string `toml:"title_it"`
	TitleNL *string `toml:"title_nl"`
	TitlePT *string `toml:"title_pt"`
	TitleRU *string `toml:"title_ru"`

	// Firmware version a firmware updater updates to.
	UpdaterVersion *string `toml:"updater_version"`
}

// Configured title, or fallback when none is set.
func (c *Config) TitleOr(fallback string) string {
	if c.Title != nil {
		return *c.Title
	}
	return fallback
}

// Loads the user-level defaults, then the project's Psp.toml in dir.
func Load(dir string) (*Config, error) {
	return LoadFiles(paths.UserConfig(), paths.ProjectConfig(dir))
}

// Decodes each file in order into one config. Keys in later files override
// earlier ones; keys a file leaves out keep their earlier value. Missing
// files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	cfg := &Config{}
	for _, path := range files {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err = dec.Decode(cfg)

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		slog.Warn("ignoring unknown keys", "file", path, "keys", unknownKeys(strict))
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return parseError(path, err)
	}

	slog.Debug("packaging config loaded", "file", path)
	return nil
}

// Wraps a decode failure with the file and, when known, the position.
func parseError(path string, err error) error {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("%w: %s:%d:%d: %w", ErrConfigParse, path, row, col, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
}

func unknownKeys(strict *toml.StrictMissingError) []string {
	keys := make([]string, 0, len(strict.Errors))
	for i := range strict.Errors {
		keys = append(keys, strings.Join(strict.Errors[i].Key(), "."))
	}
	return keys
}
