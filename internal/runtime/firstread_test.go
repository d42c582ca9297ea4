package runtime

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestOnFirstReadRunsOnce(t *testing.T) {
	calls := 0
	r := OnFirstRead(iotest.OneByteReader(strings.NewReader("abc")), func() error {
		calls++
		return nil
	})

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("data = %q, want %q", data, "abc")
	}
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}

func TestOnFirstReadRunsOnImmediateEOF(t *testing.T) {
	calls := 0
	r := OnFirstRead(strings.NewReader(""), func() error {
		calls++
		return nil
	})

	n, err := r.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Fatalf("Read = %d, %v, want 0, EOF", n, err)
	}
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}

func TestOnFirstReadHookFailureIsSticky(t *testing.T) {
	hookErr := errors.New("boom")
	r := OnFirstRead(strings.NewReader("data"), func() error { return hookErr })

	buf := make([]byte, 8)
	for i := 0; i < 2; i++ {
		n, err := r.Read(buf)
		if n != 0 {
			t.Fatalf("read %d: got %d bytes, want none", i, n)
		}
		if !errors.Is(err, hookErr) {
			t.Fatalf("read %d: err = %v, want %v", i, err, hookErr)
		}
	}
}
