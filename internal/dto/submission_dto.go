package dto

import "github.com/mozhii/platform/internal/models"

type SubmitResponse struct {
	Status       string `json:"status"`
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

type ListSubmissionsResponse struct {
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Submissions []models.Submission `json:"submissions"`
}

type FilePreview struct {
	File    string `json:"file"`
	Preview string `json:"preview"`
}

type SubmissionDetailResponse struct {
	models.Submission
	AuditLog     []models.AuditLogEntry `json:"audit_log"`
	FilePreviews []FilePreview          `json:"file_previews"`
}

type ApproveRequest struct {
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	DataCategory string `json:"data_category"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

type DecisionResponse struct {
	Status          string `json:"status"`
	SubmissionID    string `json:"submission_id"`
	Reason          string `json:"reason,omitempty"`
	HFPushInitiated bool   `json:"hf_push_initiated,omitempty"`
}

type StatsResponse struct {
	Pending      int64 `json:"pending"`
	Approved     int64 `json:"approved"`
	Rejected     int64 `json:"rejected"`
	Total        int64 `json:"total"`
	LangTamil    int64 `json:"lang_tamil"`
	LangSinhala  int64 `json:"lang_sinhala"`
	LangEnglish  int64 `json:"lang_english"`
	Feedbacks    int64 `json:"feedbacks"`
}

type AuditLogResponse struct {
	Total int64                  `json:"total"`
	Logs  []models.AuditLogEntry `json:"logs"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message" validate:"required"`
}

type FeedbacksResponse struct {
	Feedbacks []models.Feedback `json:"feedbacks"`
}

type PublicStatsResponse struct {
	ContributorsDisplay string `json:"contributors_display"`
	DatasetsDisplay     string `json:"datasets_display"`
	TotalApproved       int64  `json:"total_approved"`
	TotalContributors   int64  `json:"total_contributors"`
}
