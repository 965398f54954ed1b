package fileutil

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gofrs/flock"
	"github.com/zeebo/blake3"

	"srtcheck/internal/failure"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Input is a fully loaded text file together with its content digest.
type Input struct {
	Path   string
	Text   string
	Size   int64
	BLAKE3 string
}

// ReadText loads a UTF-8 text file, dropping a leading byte order mark.
// Missing or unreadable files are tagged failure.ErrInput; content that is not
// valid UTF-8 is tagged failure.ErrDecode.
func ReadText(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, failure.Wrap(failure.ErrInput, "fileutil", "read", path, err)
	}
	digest := Digest(data)
	size := int64(len(data))
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return Input{}, failure.Wrap(failure.ErrDecode, "fileutil", "decode", fmt.Sprintf("%s is not valid UTF-8", path), nil)
	}
	return Input{Path: path, Text: string(data), Size: size, BLAKE3: digest}, nil
}

// Digest returns the hex encoded BLAKE3-256 sum of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// WriteFileAtomic writes data to path through a temporary sibling file and a
// rename, holding an advisory lock on LockPath(path) so concurrent runs that
// target the same report do not interleave. The lock file is left in place so
// every writer locks the same inode.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", "create output directory", err)
	}

	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", "acquire output lock", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", "create temporary file", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	written, err := tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", tmpPath, err)
	}
	if written != len(data) {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write",
			fmt.Sprintf("size mismatch: expected %d bytes, wrote %d bytes", len(data), written), nil)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", "set file mode", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return failure.Wrap(failure.ErrOutput, "fileutil", "write", "replace destination", err)
	}
	return nil
}

// LockPath returns the hidden lock file guarding writes to path.
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}
