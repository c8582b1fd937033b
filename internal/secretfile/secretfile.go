// Package secretfile implements the file-reading collaborator spec.md §6
// and §7 describe but leave unspecified in the core pipeline: canonicalize
// the given path, read at most qrcode.MaxInputBytes, and warn (without
// failing) when the file is larger.
package secretfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxBytes mirrors qrcode.MaxInputBytes; kept as an independent constant so
// this package has no dependency on the qrcode package, matching the
// one-directional data flow spec.md §5 describes (each stage consumes its
// input and produces output for the next, no shared state).
const MaxBytes = 32

// ErrNotFound is returned when the given path does not exist or cannot be
// canonicalized, mirroring the original implementation's "No such file or
// directory" message.
var ErrNotFound = errors.New("no such file or directory")

// Read canonicalizes path, reads up to MaxBytes from it, and returns the
// bytes read along with a non-empty warning string when the file exceeded
// MaxBytes and was truncated. It never returns more than MaxBytes bytes.
func Read(path string) (secret []byte, warning string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	defer f.Close()

	readLen := int64(MaxBytes)
	if info.Size() < readLen {
		readLen = info.Size()
	}

	buf := make([]byte, readLen)
	if readLen > 0 {
		if _, err := io.ReadFull(f, buf); err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if info.Size() > MaxBytes {
		warning = fmt.Sprintf("File length: %d bits\nOnly first %d bits will be processed", info.Size()*8, MaxBytes*8)
	}

	return buf, warning, nil
}
