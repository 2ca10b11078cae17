package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/document"
)

const (
	extXML  = ".xml"
	extJSON = ".json"
)

// collect expands directories into the files below them with one of exts and
// returns a sorted, de-duplicated list. Explicit file arguments are kept
// whatever their extension.
func collect(args []string, exts ...string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(p))
			for _, want := range exts {
				if ext == want {
					add(p)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// load parses path as JSON when it has a .json extension and as XML otherwise.
func load(path string, mode compliance.ComplianceMode) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), extJSON) {
		return document.ParseJSON(data)
	}
	return document.ParseWithOptions(data, document.Options{Mode: mode})
}
