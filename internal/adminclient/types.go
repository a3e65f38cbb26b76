package adminclient

import (
	"bytes"
	"encoding/json"
)

// FlexBool accepts a boolean that some backends serialize as a native
// bool and others as its string form ("true"/"false").
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", `"true"`:
		*b = true
		return nil
	case "false", `"false"`, "null", `""`:
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		*b = false
		return nil
	}
	*b = FlexBool(v)
	return nil
}

type Submission struct {
	ID               string   `json:"id"`
	Language         string   `json:"language"`
	Status           string   `json:"status"`
	ContributorName  string   `json:"contributor_name"`
	ContributorEmail string   `json:"contributor_email"`
	TextContent      string   `json:"text_content"`
	DataCategory     string   `json:"data_category"`
	PIIFlags         []string `json:"pii_flags"`
	ProfanityFlag    FlexBool `json:"profanity_flags"`
	DuplicateFlag    FlexBool `json:"duplicate_flag"`
	CreatedAt        string   `json:"created_at"`
}

type FilePreview struct {
	File    string `json:"file"`
	Preview string `json:"preview"`
}

type AuditLogEntry struct {
	SubmissionID string `json:"submission_id"`
	Action       string `json:"action"`
	AdminUser    string `json:"admin_user"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	Timestamp    string `json:"timestamp"`
}

type Feedback struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type SubmissionDetail struct {
	Submission
	AuditLog     []AuditLogEntry `json:"audit_log"`
	FilePreviews []FilePreview   `json:"file_previews"`
}

type Stats struct {
	Pending     int64 `json:"pending"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	Total       int64 `json:"total"`
	LangTamil   int64 `json:"lang_tamil"`
	LangSinhala int64 `json:"lang_sinhala"`
	LangEnglish int64 `json:"lang_english"`
	Feedbacks   int64 `json:"feedbacks"`
}

type HFSettings struct {
	RepoRawText   string   `json:"repo_raw_text"`
	RepoImages    string   `json:"repo_images"`
	RepoPDF       string   `json:"repo_pdf"`
	RepoScanPDF   string   `json:"repo_scan_pdf"`
	RepoZip       string   `json:"repo_zip"`
	HFTokenMasked string   `json:"hf_token_masked"`
	HFAvailable   bool     `json:"hf_available"`
	Categories    []string `json:"categories"`
}

type StorageInfo struct {
	PendingCount  int64   `json:"pending_count"`
	OldestPending string  `json:"oldest_pending,omitempty"`
	RetentionDays int     `json:"retention_days"`
	StorageBytes  int64   `json:"storage_bytes"`
	StorageMB     float64 `json:"storage_mb"`
}
