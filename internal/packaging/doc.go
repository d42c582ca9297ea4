// Package packaging turns compiled images into EBOOT.PBP bundles.
//
// Each binary goes through three external tools, in order: prxgen converts
// the ELF image into a relocatable PRX module, mksfo writes the PARAM.SFO
// descriptor from the packaging metadata, and pack-pbp assembles the bundle
// from the descriptor, the optional XMB media and the module. The first tool
// that fails stops all packaging, including binaries not yet reached.
//
// Packaging metadata comes from Psp.toml. User-level defaults are read first
// and the project file overrides them key by key.
//
// Example usage:
//
//	cfg, err := packaging.Load(".")
//	if err != nil {
//	    return err
//	}
//	p := packaging.New(cfg, packaging.DefaultTools(), runtime.Host{})
//	if err := p.Package(ctx, artifacts); err != nil {
//	    return err
//	}
package packaging
