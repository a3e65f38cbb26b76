package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type fakeHFConfig struct {
	token string
	repos map[string]string
}

func (f fakeHFConfig) HFToken() (string, error) { return f.token, nil }
func (f fakeHFConfig) HFRepo(category string) (string, error) {
	return f.repos[category], nil
}

func TestHFClientWhoami(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/whoami-v2" {
			t.Errorf("path = %q, want /api/whoami-v2", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hf_testtoken" {
			t.Errorf("Authorization = %q, want Bearer hf_testtoken", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"name": "mozhii-bot"})
	}))
	defer server.Close()

	c := NewHFClientWithBase(fakeHFConfig{token: "hf_testtoken"}, server.URL)
	name, err := c.Whoami()
	if err != nil {
		t.Fatalf("Whoami() = %v, want nil", err)
	}
	if name != "mozhii-bot" {
		t.Errorf("Whoami() = %q, want mozhii-bot", name)
	}
}

func TestHFClientWhoamiNoToken(t *testing.T) {
	c := NewHFClientWithBase(fakeHFConfig{}, "http://localhost:0")
	if _, err := c.Whoami(); err == nil {
		t.Fatal("Whoami() with no token = nil, want error")
	}
}

func TestHFClientWhoamiRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewHFClientWithBase(fakeHFConfig{token: "hf_bad"}, server.URL)
	if _, err := c.Whoami(); err == nil {
		t.Fatal("Whoami() with rejected token = nil, want error")
	}
}

func TestHFClientPushUploadsFiles(t *testing.T) {
	var uploads []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads = append(uploads, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "story.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := fakeHFConfig{token: "hf_ok", repos: map[string]string{"raw_text": "mozhii/raw-text"}}
	c := NewHFClientWithBase(cfg, server.URL)
	c.Push("raw_text", []string{path}, "MZH-1", "tamil")

	want := "/api/datasets/mozhii/raw-text/upload/main/tamil/MZH-1/story.txt"
	if len(uploads) != 1 || uploads[0] != want {
		t.Errorf("uploads = %v, want [%s]", uploads, want)
	}
}

func TestHFClientPushSkipsWithoutRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("push without a configured repo reached the hub")
	}))
	defer server.Close()

	c := NewHFClientWithBase(fakeHFConfig{token: "hf_ok"}, server.URL)
	c.Push("images", []string{"nonexistent"}, "MZH-1", "tamil")
}
