package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pspkit/cargo-psp/internal/paths"
	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Returns a builder that runs script with sh in dir. Build arguments land in
// the script's positional parameters.
func scriptBuilder(t *testing.T, dir, script string) runtime.Command {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return runtime.Command{Name: sh, Args: []string{"-c", script, "builder"}, Dir: dir}
}

func assertNoManifest(t *testing.T, dir string) {
	t.Helper()
	if _, err := os.Stat(paths.Manifest(dir)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("manifest still present (stat err: %v)", err)
	}
}

func TestBuildEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     []string
		opts    Options
		flags   string
		rustSrc string
		hasSrc  bool
	}{
		{
			name:  "no existing flags",
			env:   []string{"HOME=/home/dev"},
			flags: "-C link-dead-code -C opt-level=3",
		},
		{
			name:  "existing flags are kept first",
			env:   []string{"RUSTFLAGS=-g", "HOME=/home/dev"},
			flags: "-g -C link-dead-code -C opt-level=3",
		},
		{
			name:    "local rust source",
			env:     []string{"HOME=/home/dev"},
			opts:    Options{LocalRustSrc: "/src/rust/src"},
			flags:   "-C link-dead-code -C opt-level=3",
			rustSrc: "/src/rust/src",
			hasSrc:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := BuildEnv(tt.env, tt.opts)

			if got, _ := runtime.LookupEnv(env, "RUSTFLAGS"); got != tt.flags {
				t.Errorf("RUSTFLAGS = %q, want %q", got, tt.flags)
			}
			src, ok := runtime.LookupEnv(env, "XARGO_RUST_SRC")
			if ok != tt.hasSrc || src != tt.rustSrc {
				t.Errorf("XARGO_RUST_SRC = %q, %v, want %q, %v", src, ok, tt.rustSrc, tt.hasSrc)
			}
			if home, _ := runtime.LookupEnv(env, "HOME"); home != "/home/dev" {
				t.Errorf("inherited HOME lost: %q", env)
			}
		})
	}
}

func TestRunRelaysOutputAndRemovesManifest(t *testing.T) {
	dir := t.TempDir()
	builder := scriptBuilder(t, dir, `
		[ -f Xargo.toml ] || exit 42
		printf '%s\n' "$@" > args.txt
		printf '%s' "$RUSTFLAGS" > flags.txt
		echo "Compiling game"
	`)
	t.Setenv("RUSTFLAGS", "-g")

	var stdout bytes.Buffer
	opts := Options{Release: true, CargoArgs: []string{"--locked"}}

	if err := Run(context.Background(), opts, dir, builder, &stdout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stdout.String() != "Compiling game\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	assertNoManifest(t, dir)

	args, _ := os.ReadFile(filepath.Join(dir, "args.txt"))
	wantArgs := []string{"build", "--target", "mipsel-sony-psp", "--locked", "--release"}
	if got := strings.Fields(string(args)); !slices.Equal(got, wantArgs) {
		t.Errorf("builder args = %q, want %q", got, wantArgs)
	}

	flags, _ := os.ReadFile(filepath.Join(dir, "flags.txt"))
	if string(flags) != "-g -C link-dead-code -C opt-level=3" {
		t.Errorf("RUSTFLAGS = %q", flags)
	}
}

func TestRunSilentBuilderRemovesManifest(t *testing.T) {
	dir := t.TempDir()
	builder := scriptBuilder(t, dir, `[ -f Xargo.toml ] || exit 42`)

	if err := Run(context.Background(), Options{}, dir, builder, &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNoManifest(t, dir)
}

func TestRunBuildFailure(t *testing.T) {
	dir := t.TempDir()
	builder := scriptBuilder(t, dir, `echo "error[E0308]: mismatched types"; exit 101`)

	err := Run(context.Background(), Options{}, dir, builder, &bytes.Buffer{})

	var failure *FailureError
	if !errors.As(err, &failure) {
		t.Fatalf("expected *FailureError, got %v", err)
	}
	if failure.Code != 101 || failure.ExitCode() != 101 {
		t.Errorf("failure = %+v, want code 101", failure)
	}
	if !errors.Is(err, ErrBuildFailed) {
		t.Error("error does not match ErrBuildFailed")
	}
	assertNoManifest(t, dir)
}

func TestRunManifestConflict(t *testing.T) {
	dir := t.TempDir()
	existing := []byte("# left behind by a crashed run\n")
	if err := os.WriteFile(paths.Manifest(dir), existing, 0644); err != nil {
		t.Fatal(err)
	}
	builder := scriptBuilder(t, dir, `touch spawned`)

	err := Run(context.Background(), Options{}, dir, builder, &bytes.Buffer{})
	if !errors.Is(err, ErrManifestConflict) {
		t.Fatalf("err = %v, want ErrManifestConflict", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "spawned")); !errors.Is(err, os.ErrNotExist) {
		t.Error("builder was spawned despite the conflict")
	}
	got, _ := os.ReadFile(paths.Manifest(dir))
	if !bytes.Equal(got, existing) {
		t.Error("pre-existing manifest was modified")
	}
}

func TestRunSpawnFailureRemovesManifest(t *testing.T) {
	dir := t.TempDir()
	builder := runtime.Command{Name: filepath.Join(dir, "missing-builder")}

	err := Run(context.Background(), Options{}, dir, builder, &bytes.Buffer{})

	var spawnErr *runtime.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected *runtime.SpawnError, got %v", err)
	}
	if spawnErr.Tool != builder.Name {
		t.Errorf("Tool = %q, want %q", spawnErr.Tool, builder.Name)
	}
	assertNoManifest(t, dir)
}

func TestRunTwice(t *testing.T) {
	dir := t.TempDir()
	builder := scriptBuilder(t, dir, `[ -f Xargo.toml ] || exit 42; echo ok`)

	for i := 0; i < 2; i++ {
		if err := Run(context.Background(), Options{}, dir, builder, &bytes.Buffer{}); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}
	assertNoManifest(t, dir)
}
