package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearch_FindFilings(t *testing.T) {
	tempDir := t.TempDir()

	files := map[string]int{
		"NL-35_Q3_2024.pdf":    10,
		"nl-37-claims.pdf":     10,
		"annual report.PDF":    10,
		"empty.pdf":            0,
		"oversized.pdf":        4096,
		"notes.txt":            10,
		"sub/NL-34_nested.pdf": 10,
	}
	for name, size := range files {
		path := filepath.Join(tempDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	search := NewSearch()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "all filings", query: "", want: []string{
			"NL-35_Q3_2024.pdf", "annual report.PDF", "empty.pdf", "nl-37-claims.pdf", "oversized.pdf",
		}},
		{name: "rejected files stay listed", query: "empty", want: []string{"empty.pdf"}},
		{name: "substring", query: "claims", want: []string{"nl-37-claims.pdf"}},
		{name: "case insensitive", query: "nl-35", want: []string{"NL-35_Q3_2024.pdf"}},
		{name: "words in any order", query: "2024 q3", want: []string{"NL-35_Q3_2024.pdf"}},
		{name: "no match", query: "nl-40", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := search.FindFilings(tempDir, tt.query)
			if err != nil {
				t.Fatalf("FindFilings() unexpected error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FindFilings() returned %d files, want %d: %v", len(got), len(tt.want), got)
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("FindFilings()[%d] = %q, want %q", i, got[i].Name, name)
				}
				if !filepath.IsAbs(got[i].Path) {
					t.Errorf("FindFilings()[%d].Path = %q, want absolute path", i, got[i].Path)
				}
			}
		})
	}
}

func TestSearch_FindFilings_ReportsSizes(t *testing.T) {
	tempDir := t.TempDir()
	for name, size := range map[string]int{"empty.pdf": 0, "large.pdf": 4096} {
		if err := os.WriteFile(filepath.Join(tempDir, name), make([]byte, size), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	got, err := NewSearch().FindFilings(tempDir, "")
	if err != nil {
		t.Fatalf("FindFilings() unexpected error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindFilings() returned %d files, want 2: %v", len(got), got)
	}
	if got[0].Name != "empty.pdf" || got[0].Size != 0 {
		t.Errorf("FindFilings()[0] = %+v, want empty.pdf with size 0", got[0])
	}
	if got[1].Name != "large.pdf" || got[1].Size != 4096 {
		t.Errorf("FindFilings()[1] = %+v, want large.pdf with size 4096", got[1])
	}
}

func TestSearch_FindFilings_Errors(t *testing.T) {
	search := NewSearch()

	if _, err := search.FindFilings("", ""); err == nil {
		t.Error("FindFilings() expected error for empty directory")
	}
	if _, err := search.FindFilings(filepath.Join(t.TempDir(), "missing"), ""); err == nil {
		t.Error("FindFilings() expected error for missing directory")
	}
}
