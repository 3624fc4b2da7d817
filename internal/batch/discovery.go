package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pagemend/pagemend/internal/pagexml"
)

// excludedNames are well-known non-page XML files that live alongside
// PAGE files in OCR workspaces and must never be processed.
var excludedNames = []string{"mets.xml", "metadata.xml"}

func isExcludedName(path string) bool {
	base := filepath.Base(path)
	for _, name := range excludedNames {
		if strings.EqualFold(base, name) {
			return true
		}
	}
	return false
}

// DiscoverFiles expands args (files and directories, directories
// recursively) into the sorted list of PAGE-XML files to process.
// Non-PAGE XML files and the well-known METS/metadata companions are
// skipped silently; an explicitly named file that is not a PAGE file
// is an error, as is an input set that yields no files at all.
func DiscoverFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := discoverInDirectory(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if isExcludedName(arg) || !pagexml.IsPageFile(arg) {
			return nil, fmt.Errorf("%s is not a PAGE-XML file", arg)
		}
		files = append(files, arg)
	}
	if len(files) == 0 {
		return nil, errors.New("no PAGE-XML files found")
	}
	sort.Strings(files)
	return files, nil
}

func discoverInDirectory(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isExcludedName(path) && pagexml.IsPageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}
