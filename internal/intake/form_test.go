package intake

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestFormSteps(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want [4]StepState
	}{
		{
			"empty form",
			Form{},
			[4]StepState{StepActive, StepPending, StepPending, StepPending},
		},
		{
			"language only",
			Form{Language: "tamil"},
			[4]StepState{StepCompleted, StepActive, StepPending, StepPending},
		},
		{
			"name without email stays on step two",
			Form{Language: "tamil", Name: "Kumar"},
			[4]StepState{StepCompleted, StepActive, StepPending, StepPending},
		},
		{
			"contributor complete",
			Form{Language: "tamil", Name: "Kumar", Email: "k@example.com"},
			[4]StepState{StepCompleted, StepCompleted, StepActive, StepPending},
		},
		{
			"content via text",
			Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello"},
			[4]StepState{StepCompleted, StepCompleted, StepCompleted, StepActive},
		},
		{
			"content via file",
			Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Documents: []File{{Name: "a.txt"}}},
			[4]StepState{StepCompleted, StepCompleted, StepCompleted, StepActive},
		},
		{
			"consent never completes the final step",
			Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello", Consent: true},
			[4]StepState{StepCompleted, StepCompleted, StepCompleted, StepActive},
		},
		{
			"later condition without predecessor does not complete",
			Form{Text: "hello", Consent: true},
			[4]StepState{StepActive, StepPending, StepPending, StepPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.form.Steps(); got != tt.want {
				t.Errorf("Steps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddDocumentsPartialBatch(t *testing.T) {
	form := &Form{}
	batch := []File{
		{Name: "notes.txt", Data: []byte("ok")},
		{Name: "malware.exe", Data: []byte("no")},
		{Name: "big.pdf", Data: bytes.Repeat([]byte("x"), MaxFileSize+1)},
		{Name: "data.csv", Data: []byte("a,b")},
	}

	rejected := form.AddDocuments(batch)

	if got := fileNames(form.Documents); !reflect.DeepEqual(got, []string{"notes.txt", "data.csv"}) {
		t.Errorf("accepted = %v, want the two valid files", got)
	}
	if len(rejected) != 2 {
		t.Fatalf("rejected = %v, want 2 entries", rejected)
	}
	if rejected[0].Name != "malware.exe" || !strings.Contains(rejected[0].Reason, "not an allowed") {
		t.Errorf("rejected[0] = %+v, want extension rejection", rejected[0])
	}
	if rejected[1].Name != "big.pdf" || !strings.Contains(rejected[1].Reason, "20MB") {
		t.Errorf("rejected[1] = %+v, want size rejection", rejected[1])
	}
}

func TestAddDocumentsMaxCount(t *testing.T) {
	form := &Form{}
	var batch []File
	for i := 0; i < MaxFilesPerCategory+2; i++ {
		batch = append(batch, File{Name: fmt.Sprintf("f%d.txt", i), Data: []byte("x")})
	}

	rejected := form.AddDocuments(batch)

	if len(form.Documents) != MaxFilesPerCategory {
		t.Errorf("accepted = %d, want %d", len(form.Documents), MaxFilesPerCategory)
	}
	if len(rejected) != 2 {
		t.Errorf("rejected = %v, want 2 over-limit entries", rejected)
	}
}

func TestCategoriesLimitedIndependently(t *testing.T) {
	form := &Form{}
	for i := 0; i < MaxFilesPerCategory; i++ {
		form.AddDocuments([]File{{Name: fmt.Sprintf("d%d.txt", i), Data: []byte("x")}})
	}

	// A full document set does not constrain photos.
	if rejected := form.AddPhotos([]File{{Name: "p.png", Data: []byte("x")}}); len(rejected) != 0 {
		t.Errorf("photo rejected with full document set: %v", rejected)
	}
}

func TestPhotoExtensionRules(t *testing.T) {
	tests := []struct {
		file string
		want bool
	}{
		{"a.png", true},
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.gif", true},
		{"a.bmp", true},
		{"a.webp", true},
		{"a.txt", false},
		{"a.svg", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			form := &Form{}
			rejected := form.AddPhotos([]File{{Name: tt.file, Data: []byte("x")}})
			if accepted := len(rejected) == 0; accepted != tt.want {
				t.Errorf("AddPhotos(%s) accepted = %v, want %v", tt.file, accepted, tt.want)
			}
		})
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	form := &Form{}
	form.AddDocuments([]File{{Name: "keep.txt", Data: []byte("x")}})
	before := fileNames(form.Documents)

	form.AddDocuments([]File{{Name: "temp.txt", Data: []byte("y")}})
	form.RemoveDocument("temp.txt")

	if got := fileNames(form.Documents); !reflect.DeepEqual(got, before) {
		t.Errorf("documents = %v, want %v after add/remove round trip", got, before)
	}
}

func TestValidateMessages(t *testing.T) {
	complete := Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello", Consent: true}

	tests := []struct {
		name    string
		mutate  func(*Form)
		wantMsg string
	}{
		{"missing language", func(f *Form) { f.Language = "" }, "language"},
		{"invalid language", func(f *Form) { f.Language = "french" }, "language"},
		{"missing name", func(f *Form) { f.Name = " " }, "name"},
		{"missing email", func(f *Form) { f.Email = "" }, "email"},
		{"no content", func(f *Form) { f.Text = "" }, "text"},
		{"no consent", func(f *Form) { f.Consent = false }, "consent"},
	}

	if err := complete.Validate(); err != nil {
		t.Fatalf("Validate(complete) = %v, want nil", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := complete
			tt.mutate(&form)
			err := form.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want a rule-specific error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func fileNames(files []File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
