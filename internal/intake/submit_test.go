package intake

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestSubmitTextOnlyContribution(t *testing.T) {
	calls := 0
	var gotFields map[string]string
	var gotFiles []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/api/submit" {
			t.Errorf("path = %q, want /api/submit", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() = %v", err)
		}
		gotFields = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotFields[key] = r.FormValue(key)
		}
		for _, fh := range r.MultipartForm.File["files"] {
			gotFiles = append(gotFiles, fh.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "submission_id": "MZH-AB12CD34"})
	}))
	defer server.Close()

	form := &Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello", Consent: true}

	id, err := NewSubmitter(server.URL).Submit(form)
	if err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}
	if id != "MZH-AB12CD34" {
		t.Errorf("submission id = %q, want MZH-AB12CD34", id)
	}
	if calls != 1 {
		t.Errorf("backend calls = %d, want 1", calls)
	}

	want := map[string]string{
		"language":          "tamil",
		"contributor_name":  "Kumar",
		"contributor_email": "k@example.com",
		"text_content":      "hello",
		"consent":           "true",
	}
	for key, value := range want {
		if gotFields[key] != value {
			t.Errorf("field %s = %q, want %q", key, gotFields[key], value)
		}
	}
	if len(gotFiles) != 0 {
		t.Errorf("files = %v, want none", gotFiles)
	}

	// Success resets all entered state.
	if !reflect.DeepEqual(*form, Form{}) {
		t.Errorf("form = %+v, want fully reset", form)
	}
}

func TestSubmitMergesDocumentsAndPhotos(t *testing.T) {
	var gotFiles []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() = %v", err)
		}
		for _, fh := range r.MultipartForm.File["files"] {
			gotFiles = append(gotFiles, fh.Filename)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "submission_id": "MZH-1"})
	}))
	defer server.Close()

	form := &Form{Language: "sinhala", Name: "Saman", Email: "s@example.com", Consent: true}
	form.AddDocuments([]File{{Name: "story.txt", Data: []byte("once upon a time")}})
	form.AddPhotos([]File{{Name: "sign.png", Data: []byte{0x89, 0x50}}})

	if _, err := NewSubmitter(server.URL).Submit(form); err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}

	if len(gotFiles) != 2 || gotFiles[0] != "story.txt" || gotFiles[1] != "sign.png" {
		t.Errorf("files = %v, want documents then photos", gotFiles)
	}
}

func TestSubmitFailurePreservesState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "invalid language"})
	}))
	defer server.Close()

	form := &Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello", Consent: true}
	saved := *form

	_, err := NewSubmitter(server.URL).Submit(form)
	if err == nil {
		t.Fatal("expected failure from 400 response")
	}
	if err.Error() != "invalid language" {
		t.Errorf("error = %q, want the backend-provided message", err)
	}
	if !reflect.DeepEqual(*form, saved) {
		t.Errorf("form = %+v, want state preserved for retry", form)
	}
}

func TestSubmitConnectionErrorPreservesState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	form := &Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello", Consent: true}

	_, err := NewSubmitter(server.URL).Submit(form)
	if err == nil {
		t.Fatal("expected connection error")
	}
	if form.Text != "hello" {
		t.Errorf("form state lost on connection error: %+v", form)
	}
}

func TestSubmitValidationBlocksRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	form := &Form{Language: "tamil", Name: "Kumar", Email: "k@example.com", Text: "hello"}

	if _, err := NewSubmitter(server.URL).Submit(form); err == nil {
		t.Fatal("Submit() = nil, want consent validation error")
	}
	if calls != 0 {
		t.Errorf("backend calls = %d, want 0 before validation passes", calls)
	}
}

func TestSendFeedback(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feedback" {
			t.Errorf("path = %q, want /api/feedback", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer server.Close()

	s := NewSubmitter(server.URL)
	if err := s.SendFeedback("Kumar", "k@example.com", "great project"); err != nil {
		t.Fatalf("SendFeedback() = %v, want nil", err)
	}
	if got["message"] != "great project" {
		t.Errorf("message = %q, want %q", got["message"], "great project")
	}

	if err := s.SendFeedback("", "", "  "); err == nil {
		t.Error("SendFeedback with blank message succeeded")
	}
}

func TestPublicStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PublicStats{ContributorsDisplay: "100+", DatasetsDisplay: "5+"})
	}))
	defer server.Close()

	stats, err := NewSubmitter(server.URL).PublicStats()
	if err != nil {
		t.Fatalf("PublicStats() = %v, want nil", err)
	}
	if stats.ContributorsDisplay != "100+" || stats.DatasetsDisplay != "5+" {
		t.Errorf("stats = %+v, want 100+/5+", stats)
	}
}
