package artifact

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/pspkit/cargo-psp/internal/paths"
)

const (

	// Target kind cargo reports for executables.
	kindBinary = "bin"

	// File names pack-pbp and mksfo write into the output directory. They are
	// shared by every binary in the workspace.
	sfoName = "PARAM.SFO"
	pbpName = "EBOOT.PBP"
)

// A compiled binary and the packaging outputs derived from it.
type Artifact struct {
	Target string // Binary target name.
	Binary string // Compiled ELF image.
	PRX    string // Relocatable module written by prxgen.
	SFO    string // Descriptor written by mksfo.
	PBP    string // Bundle written by pack-pbp.
}

// Fetches metadata from src and resolves the artifacts for triple/profile.
func Locate(ctx context.Context, src Source, triple, profile string) ([]Artifact, error) {
	md, err := src.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	artifacts := Resolve(md, triple, profile)

	slog.Debug("artifacts located",
		"count", len(artifacts),
		"dir", paths.Output(md.TargetDirectory, triple, profile),
	)
	return artifacts, nil
}

// Resolves an artifact for every binary target of every workspace member.
//
// Order follows the workspace member list, then each package's target list.
func Resolve(md *Metadata, triple, profile string) []Artifact {
	out := paths.Output(md.TargetDirectory, triple, profile)

	packages := make(map[string]*Package, len(md.Packages))
	for i := range md.Packages {
		packages[md.Packages[i].ID] = &md.Packages[i]
	}

	var artifacts []Artifact
	for _, id := range md.WorkspaceMembers {
		pkg, ok := packages[id]
		if !ok {
			slog.Warn("workspace member missing from metadata", "id", id)
			continue
		}
		for _, target := range pkg.Targets {
			if slices.Contains(target.Kind, kindBinary) {
				artifacts = append(artifacts, newArtifact(out, target.Name))
			}
		}
	}
	return artifacts
}

func newArtifact(dir, name string) Artifact {
	return Artifact{
		Target: name,
		Binary: filepath.Join(dir, name),
		PRX:    filepath.Join(dir, name+".prx"),
		SFO:    filepath.Join(dir, sfoName),
		PBP:    filepath.Join(dir, pbpName),
	}
}
