package build

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/pelletier/go-toml/v2"
)

// Bootstrap stages of the sysroot crates. Gaps are intentional and match
// what xargo expects for the PSP target.
const (
	stageCore        = 0
	stageAlloc       = 1
	stagePanicUnwind = 2
	stageStd         = 4
)

// Generated Xargo.toml contents.
type Manifest []byte

// Content digest, used to identify the manifest in logs.
func (m Manifest) Digest() digest.Digest {
	return digest.FromBytes(m)
}

func (m Manifest) String() string {
	return string(m)
}

type xargoManifest struct {
	Target map[string]xargoTarget           `toml:"target"`
	Patch  map[string]map[string]xargoPatch `toml:"patch,omitempty"`
}

type xargoTarget struct {
	Dependencies xargoDependencies `toml:"dependencies"`
}

type xargoDependencies struct {
	Core        xargoStage  `toml:"core"`
	Alloc       xargoStage  `toml:"alloc"`
	PanicUnwind xargoStage  `toml:"panic_unwind"`
	Std         *xargoStage `toml:"std,omitempty"`
}

type xargoStage struct {
	Stage int `toml:"stage"`
}

type xargoPatch struct {
	Path string `toml:"path"`
}

// Generates the toolchain bootstrap manifest for the given options.
//
// The output depends only on IncludeStd and LocalLibc. core, alloc and
// panic_unwind are always present; std is added when IncludeStd is set; a
// crates.io patch pointing libc at LocalLibc is added when it is non-empty.
func GenerateManifest(o Options) Manifest {
	deps := xargoDependencies{
		Core:        xargoStage{Stage: stageCore},
		Alloc:       xargoStage{Stage: stageAlloc},
		PanicUnwind: xargoStage{Stage: stagePanicUnwind},
	}
	if o.IncludeStd {
		deps.Std = &xargoStage{Stage: stageStd}
	}

	doc := xargoManifest{
		Target: map[string]xargoTarget{
			TargetTriple: {Dependencies: deps},
		},
	}
	if o.LocalLibc != "" {
		doc.Patch = map[string]map[string]xargoPatch{
			"crates-io": {"libc": {Path: o.LocalLibc}},
		}
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		// The document shape is fixed; only a programming error gets here.
		panic(fmt.Sprintf("encode Xargo.toml: %v", err))
	}
	return Manifest(data)
}
