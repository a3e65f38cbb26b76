package models

import "time"

// Setting groups.
const (
	SettingGroupHF    = "hf"
	SettingGroupStats = "stats"
)

// HF setting keys.
const (
	KeyHFToken     = "hf_token"
	KeyRepoRawText = "repo_raw_text"
	KeyRepoImages  = "repo_images"
	KeyRepoPDF     = "repo_pdf"
	KeyRepoScanPDF = "repo_scan_pdf"
	KeyRepoZip     = "repo_zip"
)

// Stats override keys.
const (
	KeyContributorsDisplay = "contributors_display"
	KeyDatasetsDisplay     = "datasets_display"
)

// Setting is a key/value row; Group separates Hugging Face configuration from
// public-stat display overrides.
type Setting struct {
	Group     string    `gorm:"size:20;primaryKey" json:"-"`
	Key       string    `gorm:"size:50;primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
