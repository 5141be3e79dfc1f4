package feed

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// openInput opens path for reading, decompressing .xz streams and
// extracting .zip archives (first .csv member) transparently. The
// returned close function also removes any temporary extraction dir.
func openInput(path string) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return openXZ(path)
	case ".zip":
		return openZip(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
}

func openXZ(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("open xz stream %s: %w", path, err)
	}
	return r, func() { f.Close() }, nil
}

func openZip(path string) (io.Reader, func(), error) {
	tmp, err := os.MkdirTemp("", "candlescan-zip-")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { os.RemoveAll(tmp) }

	if err := unzip.Extract(path, tmp); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("extract %s: %w", path, err)
	}

	member, err := firstCSV(tmp)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("archive %s: %w", path, err)
	}

	f, err := os.Open(member)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return f, func() { f.Close(); cleanup() }, nil
}

func firstCSV(dir string) (string, error) {
	var found string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if found == "" && !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			found = p
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no .csv member found")
	}
	return found, nil
}
