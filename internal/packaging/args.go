package packaging

import (
	"strconv"

	"github.com/pspkit/cargo-psp/internal/artifact"
)

const (

	// Positional placeholder pack-pbp expects for an absent file.
	Sentinel = "NULL"

	// mksfo markers for string and integer values.
	sfoString  = "-s"
	sfoInteger = "-d"
)

// One mksfo parameter: a type marker and a KEY=value pair.
type SfoArg struct {
	Flag string
	Pair string
}

// Projects the present descriptor fields into mksfo parameters.
//
// The order is fixed. Title and the media paths are not descriptor fields
// and never appear. Absent fields are left out entirely.
func (c *Config) SfoArgs() []SfoArg {
	fields := []struct {
		flag  string
		key   string
		value *string
	}{
		{sfoString, "DISC_ID", c.DiscID},
		{sfoString, "DISC_VERSION", c.DiscVersion},
		{sfoString, "LANGUAGE", c.Language},
		{sfoInteger, "PARENTAL_LEVEL", formatUint(c.ParentalLevel)},
		{sfoString, "PSP_SYSTEM_VER", c.PSPSystemVer},
		{sfoInteger, "REGION", formatUint(c.Region)},
		{sfoString, "TITLE_0", c.TitleJP},
		{sfoString, "TITLE_2", c.TitleFR},
		{sfoString, "TITLE_3", c.TitleES},
		{sfoString, "TITLE_4", c.TitleDE},
		{sfoString, "TITLE_5", c.TitleIT},
		{sfoString, "TITLE_6", c.TitleNL},
		{sfoString, "TITLE_7", c.TitlePT},
		{sfoString, "TITLE_8", c.TitleRU},
		{sfoString, "UPDATER_VER", c.UpdaterVersion},
	}

	var args []SfoArg
	for _, f := range fields {
		if f.value != nil {
			args = append(args, SfoArg{Flag: f.flag, Pair: f.key + "=" + *f.value})
		}
	}
	return args
}

// Arguments for prxgen: the ELF image in, the PRX module out.
func PrxgenArgs(a artifact.Artifact) []string {
	return []string{a.Binary, a.PRX}
}

// Arguments for mksfo: the descriptor parameters, the title, the output.
func MksfoArgs(a artifact.Artifact, c *Config) []string {
	sfo := c.SfoArgs()
	args := make([]string, 0, 2*len(sfo)+2)
	for _, arg := range sfo {
		args = append(args, arg.Flag, arg.Pair)
	}
	return append(args, c.TitleOr(a.Target), a.SFO)
}

// Arguments for pack-pbp. Always nine, positional; absent files are passed
// as [Sentinel].
func PbpArgs(a artifact.Artifact, c *Config) []string {
	return []string{
		a.PBP,
		a.SFO,
		orSentinel(c.XMBIconPNG),
		orSentinel(c.XMBIconPMF),
		orSentinel(c.XMBBackgroundPNG),
		orSentinel(c.XMBBackgroundOverlayPNG),
		orSentinel(c.XMBMusicAT3),
		a.PRX,
		orSentinel(c.PSAR),
	}
}

func orSentinel(s *string) string {
	if s == nil {
		return Sentinel
	}
	return *s
}

func formatUint(v *uint32) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatUint(uint64(*v), 10)
	return &s
}
