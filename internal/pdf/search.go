package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Search discovers filings in a directory. Only the top level is scanned.
type Search struct{}

// NewSearch creates a new PDF search handler
func NewSearch() *Search {
	return &Search{}
}

// FindFilings lists the *.pdf files directly inside directory whose names
// match query, sorted by name. Empty or oversized files are still listed so
// that parsing them reports why they were rejected.
func (s *Search) FindFilings(directory, query string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	entries, err := os.ReadDir(absDirectory)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isPDFName(entry.Name()) {
			continue
		}
		if !s.matchesQuery(entry.Name(), query) {
			continue
		}

		path := filepath.Join(absDirectory, entry.Name())
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// matchesQuery performs fuzzy matching on the filename
func (s *Search) matchesQuery(filename, query string) bool {
	if query == "" {
		return true
	}

	fileName := strings.ToLower(filename)
	if strings.Contains(fileName, query) {
		return true
	}

	// Every query word must appear inside some filename word
	words := splitIntoWords(strings.TrimSuffix(fileName, ".pdf"))
	for _, queryWord := range splitIntoWords(query) {
		found := false
		for _, word := range words {
			if strings.Contains(word, queryWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// splitIntoWords splits a string into lower-case words using common separators
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '[', ']':
			return true
		}
		return false
	})
}
