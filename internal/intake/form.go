// Package intake implements the public contribution form: a four-step
// state machine over language, contributor identity, content, and
// consent, with per-category file rules and a multipart submitter.
package intake

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	MaxFilesPerCategory = 5
	MaxFileSize         = 20 * 1024 * 1024
)

// Languages a contribution can carry.
var Languages = []string{"tamil", "sinhala", "english"}

var docExts = map[string]bool{
	".txt": true, ".pdf": true, ".docx": true, ".csv": true,
}

var photoExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

// StepState is the visual state of one form step.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

// File is one attached file, read into memory when the contributor
// picked it.
type File struct {
	Name string
	Data []byte
}

// Rejected explains why one file in a batch was not accepted. The rest
// of the batch is unaffected.
type Rejected struct {
	Name   string
	Reason string
}

// Form holds the contribution being assembled. Zero value is an empty
// form.
type Form struct {
	Language  string
	Name      string
	Email     string
	Text      string
	Consent   bool
	Documents []File
	Photos    []File
}

func validLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// stepDone reports whether step n's own condition holds, ignoring
// predecessors.
func (f *Form) stepDone(n int) bool {
	switch n {
	case 1:
		return validLanguage(f.Language)
	case 2:
		return strings.TrimSpace(f.Name) != "" && strings.TrimSpace(f.Email) != ""
	case 3:
		return strings.TrimSpace(f.Text) != "" || len(f.Documents) > 0 || len(f.Photos) > 0
	case 4:
		return f.Consent
	}
	return false
}

// Steps derives the state of all four steps. A step is completed only
// when it and every predecessor hold; the first not-completed step is
// active. Step 4 never completes, submission is its terminal action.
func (f *Form) Steps() [4]StepState {
	var states [4]StepState
	activeSeen := false
	for n := 1; n <= 4; n++ {
		done := f.stepDone(n) && !activeSeen && n != 4
		switch {
		case done:
			states[n-1] = StepCompleted
		case !activeSeen:
			states[n-1] = StepActive
			activeSeen = true
		default:
			states[n-1] = StepPending
		}
	}
	return states
}

// AddDocuments adds a batch of document files. Violating entries are
// rejected individually with a reason; the rest are accepted.
func (f *Form) AddDocuments(files []File) []Rejected {
	accepted, rejected := filterBatch(files, f.Documents, docExts, "document")
	f.Documents = append(f.Documents, accepted...)
	return rejected
}

// AddPhotos adds a batch of photo files under the photo rules.
func (f *Form) AddPhotos(files []File) []Rejected {
	accepted, rejected := filterBatch(files, f.Photos, photoExts, "photo")
	f.Photos = append(f.Photos, accepted...)
	return rejected
}

func filterBatch(files, existing []File, allowed map[string]bool, kind string) ([]File, []Rejected) {
	var accepted []File
	var rejected []Rejected
	count := len(existing)

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name))
		switch {
		case count >= MaxFilesPerCategory:
			rejected = append(rejected, Rejected{file.Name, fmt.Sprintf("maximum %d %s files allowed", MaxFilesPerCategory, kind)})
		case !allowed[ext]:
			rejected = append(rejected, Rejected{file.Name, fmt.Sprintf("file type %s is not an allowed %s type", ext, kind)})
		case len(file.Data) > MaxFileSize:
			rejected = append(rejected, Rejected{file.Name, "file exceeds the 20MB limit"})
		default:
			accepted = append(accepted, file)
			count++
		}
	}
	return accepted, rejected
}

// RemoveDocument drops the first attached document with the given name.
func (f *Form) RemoveDocument(name string) {
	f.Documents = removeFile(f.Documents, name)
}

// RemovePhoto drops the first attached photo with the given name.
func (f *Form) RemovePhoto(name string) {
	f.Photos = removeFile(f.Photos, name)
}

func removeFile(files []File, name string) []File {
	for i, file := range files {
		if file.Name == name {
			return append(files[:i:i], files[i+1:]...)
		}
	}
	return files
}

// Validate checks everything submission requires and returns the first
// violated rule's message. No request is sent while this fails.
func (f *Form) Validate() error {
	if !validLanguage(f.Language) {
		return errors.New("please select a language")
	}
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("please enter your name")
	}
	if strings.TrimSpace(f.Email) == "" {
		return errors.New("please enter your email")
	}
	if !f.stepDone(3) {
		return errors.New("please add some text or upload at least one file")
	}
	if !f.Consent {
		return errors.New("please confirm your consent to contribute")
	}
	return nil
}

// Reset clears all entered state after a successful submission.
func (f *Form) Reset() {
	*f = Form{}
}
