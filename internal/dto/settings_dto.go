package dto

type HFSettingsResponse struct {
	RepoRawText   string   `json:"repo_raw_text"`
	RepoImages    string   `json:"repo_images"`
	RepoPDF       string   `json:"repo_pdf"`
	RepoScanPDF   string   `json:"repo_scan_pdf"`
	RepoZip       string   `json:"repo_zip"`
	HFTokenMasked string   `json:"hf_token_masked"`
	HFAvailable   bool     `json:"hf_available"`
	Categories    []string `json:"categories"`
}

// HFSettingsRequest is a partial update; the token pointer distinguishes
// "leave the stored secret alone" (nil) from "replace it" (non-nil).
type HFSettingsRequest struct {
	RepoRawText *string `json:"repo_raw_text"`
	RepoImages  *string `json:"repo_images"`
	RepoPDF     *string `json:"repo_pdf"`
	RepoScanPDF *string `json:"repo_scan_pdf"`
	RepoZip     *string `json:"repo_zip"`
	HFToken     *string `json:"hf_token"`
}

type HFTestResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

type StorageInfoResponse struct {
	PendingCount  int64  `json:"pending_count"`
	OldestPending string `json:"oldest_pending,omitempty"`
	RetentionDays int    `json:"retention_days"`
	StorageBytes  int64  `json:"storage_bytes"`
	StorageMB     float64 `json:"storage_mb"`
}

type StatsOverrideRequest struct {
	ContributorsDisplay *string `json:"contributors_display"`
	DatasetsDisplay     *string `json:"datasets_display"`
}
