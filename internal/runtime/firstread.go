package runtime

import (
	"io"
	"sync"
)

// Wraps an [io.Reader] and runs a hook when the first Read returns.
//
// The hook runs exactly once, after the underlying Read completes and before
// its result is handed to the caller, whatever that result is: data, EOF or
// an error. If the hook fails, that Read and every later one return the
// hook's error and no data.
type firstReadReader struct {
	r    io.Reader
	once sync.Once
	hook func() error
	err  error
}

// Returns a reader that runs hook once, on the first Read.
func OnFirstRead(r io.Reader, hook func() error) io.Reader {
	return &firstReadReader{r: r, hook: hook}
}

func (f *firstReadReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	f.once.Do(func() { f.err = f.hook() })
	if f.err != nil {
		return 0, f.err
	}
	return n, err
}
