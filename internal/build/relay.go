package build

import (
	"errors"
	"fmt"
	"io"

	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Read size for relaying builder output.
const relayChunkSize = 8192

// Copies builder output to the parent's stdout, removing the manifest on the
// first read.
//
// The builder has opened the manifest by the time it first writes to stdout,
// so that is when it is removed. This is a timing assumption about xargo, not
// a guarantee. An immediate EOF counts as a first read, so the manifest is
// removed even when the builder prints nothing.
type relay struct {
	src   io.Reader
	dst   io.Writer
	abort func()
}

func newRelay(src io.Reader, dst io.Writer, remove func() error, abort func()) *relay {
	return &relay{
		src:   runtime.OnFirstRead(src, remove),
		dst:   dst,
		abort: abort,
	}
}

// Relays until EOF. Any failure aborts the builder.
func (r *relay) run() error {
	buf := make([]byte, relayChunkSize)

	for {
		n, err := r.src.Read(buf)
		if n > 0 {
			if _, werr := r.dst.Write(buf[:n]); werr != nil {
				r.abort()
				return fmt.Errorf("%w: %w", ErrRelay, werr)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrManifestRemoval):
			r.abort()
			return err
		default:
			r.abort()
			return fmt.Errorf("%w: %w", ErrRelay, err)
		}
	}
}
