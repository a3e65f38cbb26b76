package adminclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type fakeConfirmer struct{ answer bool }

func (f fakeConfirmer) Confirm(string) bool { return f.answer }

type fakePrompter struct {
	value string
	ok    bool
}

func (f fakePrompter) Prompt(string, string) (string, bool) { return f.value, f.ok }

func listServer(t *testing.T, capture *url.Values, decisions *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/submissions":
			*capture = r.URL.Query()
			json.NewEncoder(w).Encode(map[string]interface{}{
				"total":       int64(31),
				"submissions": []Submission{{ID: "MZH-1", Status: "PENDING"}},
			})
		case r.URL.Path == "/api/admin/stats":
			json.NewEncoder(w).Encode(Stats{})
		default:
			if decisions != nil {
				var body map[string]string
				json.NewDecoder(r.Body).Decode(&body)
				*decisions = append(*decisions, r.URL.Path+"|reason="+body["reason"])
			}
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		}
	}))
}

func TestBrowserListQuery(t *testing.T) {
	var got url.Values
	server := listServer(t, &got, nil)
	defer server.Close()

	client := NewClient(server.URL, newLoggedIn(t, server.URL))
	b := NewBrowser(client, fakeConfirmer{}, fakePrompter{})

	b.SetFilters(Filters{Status: "PENDING", Language: "tamil"})
	b.SetPage(2)
	if err := b.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	want := map[string]string{
		"page": "2", "limit": "15", "status": "PENDING", "language": "tamil",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Errorf("query %s = %q, want %q", key, got.Get(key), value)
		}
	}
	for _, absent := range []string{"search", "date_from", "date_to"} {
		if got.Has(absent) {
			t.Errorf("query carries omitted filter %s=%q", absent, got.Get(absent))
		}
	}
}

func TestBrowserAllSentinelImposesNoConstraint(t *testing.T) {
	var got url.Values
	server := listServer(t, &got, nil)
	defer server.Close()

	client := NewClient(server.URL, newLoggedIn(t, server.URL))
	b := NewBrowser(client, fakeConfirmer{}, fakePrompter{})

	b.SetFilters(Filters{Status: "all", Language: "all"})
	if err := b.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if got.Has("status") || got.Has("language") {
		t.Errorf("query = %v, want no status/language constraint", got)
	}
}

func TestBrowserFilterChangeResetsPage(t *testing.T) {
	b := NewBrowser(nil, fakeConfirmer{}, fakePrompter{})

	b.SetPage(4)
	b.SetFilters(Filters{Status: "PENDING"})
	if b.Page() != 1 {
		t.Errorf("page after filter change = %d, want 1", b.Page())
	}

	b.SetPage(3)
	if b.Filters().Status != "PENDING" {
		t.Errorf("filters after page change = %+v, want status PENDING preserved", b.Filters())
	}
	if b.Page() != 3 {
		t.Errorf("page = %d, want 3", b.Page())
	}
}

func TestBrowserTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{15, 1},
		{16, 2},
		{31, 3},
		{45, 3},
	}

	for _, tt := range tests {
		b := NewBrowser(nil, fakeConfirmer{}, fakePrompter{})
		b.total = tt.total
		if got := b.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(total=%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestCanQuickDecide(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"PENDING", true},
		{"APPROVED", false},
		{"REJECTED", false},
	}

	for _, tt := range tests {
		sub := &Submission{Status: tt.status}
		if got := CanQuickDecide(sub); got != tt.want {
			t.Errorf("CanQuickDecide(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBrowserQuickApprove(t *testing.T) {
	var got url.Values
	var decisions []string
	server := listServer(t, &got, &decisions)
	defer server.Close()

	client := NewClient(server.URL, newLoggedIn(t, server.URL))

	// Declined confirmation aborts without a request.
	b := NewBrowser(client, fakeConfirmer{answer: false}, fakePrompter{})
	done, err := b.QuickApprove("MZH-1")
	if err != nil || done {
		t.Fatalf("QuickApprove(declined) = (%v, %v), want (false, nil)", done, err)
	}
	if len(decisions) != 0 {
		t.Fatalf("declined confirmation still sent %v", decisions)
	}

	// Confirmed approval sends the default reason and refreshes.
	refreshed := false
	b = NewBrowser(client, fakeConfirmer{answer: true}, fakePrompter{})
	b.RefreshDashboard = func() { refreshed = true }
	done, err = b.QuickApprove("MZH-1")
	if err != nil || !done {
		t.Fatalf("QuickApprove(confirmed) = (%v, %v), want (true, nil)", done, err)
	}
	if len(decisions) != 1 || decisions[0] != "/api/admin/submission/MZH-1/approve|reason="+QuickApproveReason {
		t.Errorf("decisions = %v, want one approve with the quick reason", decisions)
	}
	if !refreshed {
		t.Error("dashboard refresh not triggered after quick approve")
	}
}

func TestBrowserQuickReject(t *testing.T) {
	tests := []struct {
		name       string
		prompt     fakePrompter
		wantSent   bool
		wantReason string
	}{
		{"cancelled prompt aborts", fakePrompter{value: "", ok: false}, false, ""},
		{"confirmed empty reason proceeds", fakePrompter{value: "", ok: true}, true, ""},
		{"supplied reason", fakePrompter{value: "spam", ok: true}, true, "spam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			var decisions []string
			server := listServer(t, &got, &decisions)
			defer server.Close()

			client := NewClient(server.URL, newLoggedIn(t, server.URL))
			b := NewBrowser(client, fakeConfirmer{answer: true}, tt.prompt)

			done, err := b.QuickReject("MZH-1")
			if err != nil {
				t.Fatalf("QuickReject() = %v, want nil", err)
			}
			if done != tt.wantSent {
				t.Errorf("done = %v, want %v", done, tt.wantSent)
			}
			if tt.wantSent {
				want := "/api/admin/submission/MZH-1/reject|reason=" + tt.wantReason
				if len(decisions) != 1 || decisions[0] != want {
					t.Errorf("decisions = %v, want [%s]", decisions, want)
				}
			} else if len(decisions) != 0 {
				t.Errorf("cancelled prompt still sent %v", decisions)
			}
		})
	}
}
