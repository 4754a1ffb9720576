// Package batch walks input paths and runs per-file conversions. The
// conversion core never logs or retries; skip/log policy lives here.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flipdev/ntagconv/pkg/ntag"
)

const (
	binExt = ".bin"
	nfcExt = ".nfc"
)

// Result classifies what happened to a single file.
type Result int

const (
	ResultConverted Result = iota // .bin rendered to a fresh .nfc document
	ResultPatched                 // existing .nfc rewritten with PWD/PACK pages
	ResultSkipped                 // extension not handled
)

// Gather returns the root used for relative output mapping and the list
// of files to process. A file input yields just itself; a directory
// input is walked recursively for .bin and .nfc files.
func Gather(inputPath string) (string, []string, error) {
	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(absIn)
	if err != nil {
		return "", nil, err
	}

	if !info.IsDir() {
		return filepath.Dir(absIn), []string{absIn}, nil
	}

	var files []string
	err = filepath.WalkDir(absIn, func(p string, d fs.DirEntry, e error) error {
		if e != nil {
			return e
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case binExt, nfcExt:
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return absIn, files, nil
}

// OutPathFor maps an input file to its output location. With tree set,
// the input's directory structure below inRoot is mirrored under
// outRoot; otherwise all outputs land directly in outRoot. A .bin input
// gets the .nfc extension, a .nfc input keeps its name.
func OutPathFor(inPath, inRoot, outRoot string, tree bool) (string, error) {
	rel := filepath.Base(inPath)
	if tree {
		r, err := filepath.Rel(inRoot, inPath)
		if err != nil {
			return "", fmt.Errorf("mapping %q below %q: %w", inPath, inRoot, err)
		}
		rel = r
	}
	if strings.ToLower(filepath.Ext(rel)) == binExt {
		rel = rel[:len(rel)-len(binExt)] + nfcExt
	}
	return filepath.Join(outRoot, rel), nil
}

// ProcessFile converts a single file, dispatching on its extension.
// Unhandled extensions are reported as skipped, not as errors.
func ProcessFile(inPath, outPath string) (Result, error) {
	switch strings.ToLower(filepath.Ext(inPath)) {
	case binExt:
		return ResultConverted, convertBin(inPath, outPath)
	case nfcExt:
		return ResultPatched, patchNfc(inPath, outPath)
	default:
		return ResultSkipped, nil
	}
}

func convertBin(inPath, outPath string) error {
	image, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", inPath, err)
	}
	doc, err := ntag.Assemble(image)
	if err != nil {
		return fmt.Errorf("converting %q: %w", inPath, err)
	}
	return writeOutput(outPath, doc)
}

func patchNfc(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", inPath, err)
	}
	// A trailing final newline survives the round trip as an empty
	// last element.
	lines := strings.Split(string(raw), "\n")
	patched, err := ntag.PatchPassword(lines)
	if err != nil {
		return fmt.Errorf("patching %q: %w", inPath, err)
	}
	return writeOutput(outPath, strings.Join(patched, "\n"))
}

func writeOutput(outPath, content string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating output directory for %q: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}
	return nil
}
