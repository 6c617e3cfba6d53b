package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

const testGlossaryJSON = `{
  "version": "test",
  "last_updated": "2026-08-12T00:00:00Z",
  "total_terms": 3,
  "terms": [
    {
      "id": "SC",
      "name_us": "single crochet",
      "name_uk": "double crochet",
      "abbreviation_us": "sc",
      "abbreviation_uk": "dc",
      "category": "Basic",
      "instruction": "Insert the hook, pull up a loop.",
      "tags": ["basic", "amigurumi"],
      "difficulty": "Beginner",
      "status": "Active"
    },
    {
      "id": "MR",
      "name_us": "magic ring",
      "name_uk": "magic circle",
      "abbreviation_us": "mr",
      "abbreviation_uk": "mc",
      "category": "Techniques",
      "instruction": "Wrap the yarn and work into the loop.",
      "tags": ["amigurumi"],
      "difficulty": "Intermediate",
      "status": "Active"
    },
    {
      "id": "OLD",
      "name_us": "old stitch",
      "name_uk": "old stitch uk",
      "category": "Basic",
      "difficulty": "Beginner",
      "status": "Deprecated"
    }
  ]
}`

func writeGlossaryFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "glossary.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write glossary file: %v", err)
	}
	return path
}

func TestNewGlossaryRepository(t *testing.T) {
	repo, err := NewGlossaryRepository(writeGlossaryFile(t, testGlossaryJSON))
	if err != nil {
		t.Fatalf("NewGlossaryRepository() error = %v", err)
	}

	glossary := repo.Glossary()
	if glossary.TotalTerms != 3 || len(glossary.Terms) != 3 {
		t.Errorf("loaded %d/%d terms, want 3/3", glossary.TotalTerms, len(glossary.Terms))
	}
	if glossary.Terms[0].ID != "SC" {
		t.Errorf("first term = %q, want authoring order preserved", glossary.Terms[0].ID)
	}
}

func TestNewGlossaryRepositoryCountMismatch(t *testing.T) {
	content := `{"version":"test","total_terms":2,"terms":[{"id":"SC","name_us":"a","name_uk":"b","category":"Basic","difficulty":"Beginner","status":"Active"}]}`

	if _, err := NewGlossaryRepository(writeGlossaryFile(t, content)); err == nil {
		t.Fatal("expected an error for a total_terms mismatch")
	}
}

func TestNewGlossaryRepositoryMissingFile(t *testing.T) {
	if _, err := NewGlossaryRepository(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestGetByID(t *testing.T) {
	repo, err := NewGlossaryRepository(writeGlossaryFile(t, testGlossaryJSON))
	if err != nil {
		t.Fatalf("NewGlossaryRepository() error = %v", err)
	}

	tests := []struct {
		name    string
		id      string
		wantID  string
		wantErr error
	}{
		{"exact", "SC", "SC", nil},
		{"lowercase", "mr", "MR", nil},
		{"padded", "  sc ", "SC", nil},
		{"unknown", "XYZ", "", ErrTermNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := repo.GetByID(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetByID(%q) error = %v, want %v", tt.id, err, tt.wantErr)
			}
			if tt.wantErr == nil && term.ID != tt.wantID {
				t.Errorf("GetByID(%q) = %q, want %q", tt.id, term.ID, tt.wantID)
			}
		})
	}
}

func TestGetRandomSkipsDeprecated(t *testing.T) {
	repo, err := NewGlossaryRepository(writeGlossaryFile(t, testGlossaryJSON))
	if err != nil {
		t.Fatalf("NewGlossaryRepository() error = %v", err)
	}

	for i := 0; i < 20; i++ {
		term, err := repo.GetRandom()
		if err != nil {
			t.Fatalf("GetRandom() error = %v", err)
		}
		if term.Status != entities.StatusActive {
			t.Fatalf("GetRandom() returned deprecated term %s", term.ID)
		}
	}
}

func TestGetByCategory(t *testing.T) {
	repo, err := NewGlossaryRepository(writeGlossaryFile(t, testGlossaryJSON))
	if err != nil {
		t.Fatalf("NewGlossaryRepository() error = %v", err)
	}

	terms, err := repo.GetByCategory(entities.CategoryBasic)
	if err != nil {
		t.Fatalf("GetByCategory() error = %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d Basic terms, want 2", len(terms))
	}

	terms, err = repo.GetByCategory(entities.CategoryColorwork)
	if err != nil {
		t.Fatalf("GetByCategory() error = %v", err)
	}
	if len(terms) != 0 {
		t.Errorf("got %d Colorwork terms, want 0", len(terms))
	}
}

func TestSearch(t *testing.T) {
	repo, err := NewGlossaryRepository(writeGlossaryFile(t, testGlossaryJSON))
	if err != nil {
		t.Fatalf("NewGlossaryRepository() error = %v", err)
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"by id", "sc", []string{"SC"}},
		{"by uk name", "magic circle", []string{"MR"}},
		{"by tag", "amigurumi", []string{"SC", "MR"}},
		{"no match", "bobble", nil},
		{"blank query", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := repo.Search(tt.query)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			if len(terms) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d terms, want %d", tt.query, len(terms), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if terms[i].ID != want {
					t.Errorf("Search(%q)[%d] = %q, want %q", tt.query, i, terms[i].ID, want)
				}
			}
		})
	}
}
