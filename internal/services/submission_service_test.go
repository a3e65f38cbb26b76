package services

import (
	"regexp"
	"testing"
)

func TestNewSubmissionID(t *testing.T) {
	shape := regexp.MustCompile(`^MZH-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newSubmissionID()
		if !shape.MatchString(id) {
			t.Fatalf("newSubmissionID() = %q, want MZH- prefix and 8 hex chars", id)
		}
		if seen[id] {
			t.Fatalf("newSubmissionID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"no files", nil, "raw_text"},
		{"text file", []string{"a.txt"}, "raw_text"},
		{"image wins", []string{"a.pdf", "b.png"}, "images"},
		{"pdf", []string{"a.pdf", "b.txt"}, "pdf"},
		{"archive", []string{"a.zip"}, "zip"},
		{"pdf beats archive", []string{"a.zip", "b.pdf"}, "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := make([]IntakeFile, len(tt.files))
			for i, name := range tt.files {
				files[i] = IntakeFile{Name: name}
			}
			if got := detectCategory(files); got != tt.want {
				t.Errorf("detectCategory(%v) = %q, want %q", tt.files, got, tt.want)
			}
		})
	}
}
