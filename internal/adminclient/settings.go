package adminclient

import (
	"errors"
	"fmt"
)

var ErrTestInFlight = errors.New("connection test already running")

// SettingsPanel is the read/write view over the dataset-repository
// configuration plus the connectivity probe and storage display.
type SettingsPanel struct {
	client   *Client
	settings HFSettings
	testBusy bool
}

func NewSettingsPanel(client *Client) *SettingsPanel {
	return &SettingsPanel{client: client}
}

func (p *SettingsPanel) Load() error {
	var settings HFSettings
	if err := p.client.get("/api/admin/hf-settings", nil, &settings); err != nil {
		return err
	}
	p.settings = settings
	return nil
}

func (p *SettingsPanel) Settings() HFSettings { return p.settings }

// SaveInput carries the editable fields. The token field is write-only:
// leaving it empty keeps the stored secret, a non-empty value replaces it.
type SaveInput struct {
	RepoRawText string
	RepoImages  string
	RepoPDF     string
	RepoScanPDF string
	RepoZip     string
	HFToken     string
}

func (p *SettingsPanel) Save(in SaveInput) error {
	body := map[string]string{
		"repo_raw_text": in.RepoRawText,
		"repo_images":   in.RepoImages,
		"repo_pdf":      in.RepoPDF,
		"repo_scan_pdf": in.RepoScanPDF,
		"repo_zip":      in.RepoZip,
	}
	if in.HFToken != "" {
		body["hf_token"] = in.HFToken
	}
	if err := p.client.send("PUT", "/api/admin/hf-settings", body, nil); err != nil {
		return err
	}
	return p.Load()
}

// TestBusy reports whether a connectivity probe is in flight; the
// trigger stays disabled for the duration.
func (p *SettingsPanel) TestBusy() bool { return p.testBusy }

// TestConnection probes the dataset host with the stored token. The
// busy flag is restored on both the success and failure paths.
func (p *SettingsPanel) TestConnection() (username string, err error) {
	if p.testBusy {
		return "", ErrTestInFlight
	}
	p.testBusy = true
	defer func() { p.testBusy = false }()

	var resp struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
		Error    string `json:"error"`
	}
	if err := p.client.send("POST", "/api/admin/hf-test", nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		if resp.Error != "" {
			return "", errors.New(resp.Error)
		}
		return "", errors.New("connection test failed")
	}
	return resp.Username, nil
}

func (p *SettingsPanel) StorageInfo() (*StorageInfo, error) {
	var info StorageInfo
	if err := p.client.get("/api/admin/storage-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveStatsOverride sets the public marketing counters.
func (p *SettingsPanel) SaveStatsOverride(contributors, datasets string) error {
	body := map[string]string{}
	if contributors != "" {
		body["contributors_display"] = contributors
	}
	if datasets != "" {
		body["datasets_display"] = datasets
	}
	return p.client.send("PUT", "/api/admin/stats-override", body, nil)
}

// FormatStorageSize renders a byte count in MB when at least 1MB,
// otherwise in KB.
func FormatStorageSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb {
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	}
	return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
}
