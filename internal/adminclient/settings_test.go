package adminclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func settingsServer(t *testing.T, saved *[]map[string]string, testStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/hf-settings" && r.Method == "PUT":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			*saved = append(*saved, body)
			json.NewEncoder(w).Encode(map[string]string{"status": "success"})
		case r.URL.Path == "/api/admin/hf-settings":
			json.NewEncoder(w).Encode(HFSettings{HFTokenMasked: "hf_a****bcd", HFAvailable: true})
		case r.URL.Path == "/api/admin/hf-test":
			if testStatus != http.StatusOK {
				w.WriteHeader(testStatus)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "username": "mozhii-bot"})
		case r.URL.Path == "/api/admin/storage-info":
			json.NewEncoder(w).Encode(StorageInfo{PendingCount: 3, StorageBytes: 2 * 1024 * 1024, RetentionDays: 7})
		}
	}))
}

func TestSettingsSaveEmptyTokenKeepsSecret(t *testing.T) {
	var saved []map[string]string
	server := settingsServer(t, &saved, http.StatusOK)
	defer server.Close()

	client := NewClient(server.URL, newLoggedIn(t, server.URL))
	p := NewSettingsPanel(client)

	if err := p.Save(SaveInput{RepoRawText: "mozhii/raw-text"}); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}
	if _, present := saved[0]["hf_token"]; present {
		t.Errorf("empty token was transmitted: %v", saved[0])
	}

	if err := p.Save(SaveInput{HFToken: "hf_newsecret"}); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}
	if saved[1]["hf_token"] != "hf_newsecret" {
		t.Errorf("non-empty token not transmitted: %v", saved[1])
	}
}

func TestSettingsLoadMasksToken(t *testing.T) {
	var saved []map[string]string
	server := settingsServer(t, &saved, http.StatusOK)
	defer server.Close()

	client := NewClient(server.URL, newLoggedIn(t, server.URL))
	p := NewSettingsPanel(client)

	if err := p.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if got := p.Settings().HFTokenMasked; got != "hf_a****bcd" {
		t.Errorf("HFTokenMasked = %q, want the masked hint", got)
	}
}

func TestSettingsTestConnectionRestoresBusyFlag(t *testing.T) {
	var saved []map[string]string

	t.Run("success path", func(t *testing.T) {
		server := settingsServer(t, &saved, http.StatusOK)
		defer server.Close()

		p := NewSettingsPanel(NewClient(server.URL, newLoggedIn(t, server.URL)))
		username, err := p.TestConnection()
		if err != nil {
			t.Fatalf("TestConnection() = %v, want nil", err)
		}
		if username != "mozhii-bot" {
			t.Errorf("username = %q, want mozhii-bot", username)
		}
		if p.TestBusy() {
			t.Error("busy flag stuck after success")
		}
	})

	t.Run("failure path", func(t *testing.T) {
		server := settingsServer(t, &saved, http.StatusBadGateway)
		defer server.Close()

		p := NewSettingsPanel(NewClient(server.URL, newLoggedIn(t, server.URL)))
		if _, err := p.TestConnection(); err == nil {
			t.Fatal("expected failure from 502 response")
		}
		if p.TestBusy() {
			t.Error("busy flag stuck after failure")
		}
	})
}

func TestSettingsStorageInfo(t *testing.T) {
	var saved []map[string]string
	server := settingsServer(t, &saved, http.StatusOK)
	defer server.Close()

	p := NewSettingsPanel(NewClient(server.URL, newLoggedIn(t, server.URL)))
	info, err := p.StorageInfo()
	if err != nil {
		t.Fatalf("StorageInfo() = %v, want nil", err)
	}
	if info.PendingCount != 3 || info.RetentionDays != 7 {
		t.Errorf("info = %+v, want 3 pending, 7-day retention", info)
	}
}

func TestFormatStorageSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 KB"},
		{512, "0.50 KB"},
		{1024, "1.00 KB"},
		{1024*1024 - 1, "1024.00 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}

	for _, tt := range tests {
		if got := FormatStorageSize(tt.bytes); got != tt.want {
			t.Errorf("FormatStorageSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
