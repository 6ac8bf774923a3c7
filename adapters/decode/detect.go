package decode

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"weightscope/internal/config"
	"weightscope/internal/errors"
	"weightscope/ports"
)

// Candidate file suffixes written by the simulation engine.
const (
	suffixBinary = "_weights.bin"
	suffixText   = "_weights.txt"
)

// ForPath selects the decoder for a weight file from its name alone. The
// extension check is case-sensitive: exactly ".bin" selects the binary
// decoder, anything else the text decoder. The file must exist; contents are
// never inspected.
func ForPath(path string, cfg config.DecodeConfig) (ports.Decoder, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if filepath.Ext(path) == ".bin" {
		return NewBinaryDecoder(cfg.MaxBinaryRecords), nil
	}
	return NewTextDecoder(cfg.MaxTextLines), nil
}

// ScanAll returns every candidate weight file in dir, most recently modified
// first. Name order breaks mtime ties so the result is deterministic.
func ScanAll(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %s", dir)
	}

	type candidate struct {
		path  string
		mtime int64
	}
	var found []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffixBinary) && !strings.HasSuffix(name, suffixText) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", name)
		}
		found = append(found, candidate{
			path:  filepath.Join(dir, name),
			mtime: info.ModTime().UnixNano(),
		})
	}
	if len(found) == 0 {
		return nil, errors.NoCandidateFiles(dir)
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].mtime != found[j].mtime {
			return found[i].mtime > found[j].mtime
		}
		return found[i].path < found[j].path
	})

	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths, nil
}

// ScanLatest returns the most recently modified candidate weight file in dir.
func ScanLatest(dir string) (string, error) {
	paths, err := ScanAll(dir)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}
