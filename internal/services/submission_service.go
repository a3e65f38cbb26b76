package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/models"
	"github.com/mozhii/platform/internal/quality"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyDecided     = errors.New("submission already decided")
)

const (
	MaxFiles    = 5
	MaxFileSize = 20 * 1024 * 1024

	// DefaultRejectReason is used when a reject request carries no reason.
	DefaultRejectReason = "Your submission did not meet our guidelines."
)

var allowedExts = map[string]bool{
	".txt": true, ".pdf": true, ".docx": true, ".csv": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
	".zip": true, ".tar": true, ".gz": true,
}

// IntakeFile is one uploaded file, already read into memory by the handler.
type IntakeFile struct {
	Name string
	Data []byte
}

type CreateSubmission struct {
	Language         string
	ContributorName  string
	ContributorEmail string
	TextContent      string
	Consent          bool
	Files            []IntakeFile
}

type ListFilters struct {
	Status   string
	Language string
	Search   string
	DateFrom string
	DateTo   string
}

// HFPusher uploads approved files to the configured dataset repository.
// Pushes are best effort; a failed push never rolls back a decision.
type HFPusher interface {
	Push(category string, filePaths []string, submissionID, language string)
}

type SubmissionService struct {
	db            *gorm.DB
	dataDir       string
	retentionDays int
	checker       quality.Checker
	pusher        HFPusher
}

func NewSubmissionService(db *gorm.DB, dataDir string, retentionDays int, checker quality.Checker, pusher HFPusher) *SubmissionService {
	if checker == nil {
		checker = quality.NoopChecker{}
	}
	return &SubmissionService{
		db:            db,
		dataDir:       dataDir,
		retentionDays: retentionDays,
		checker:       checker,
		pusher:        pusher,
	}
}

func newSubmissionID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "MZH-" + strings.ToUpper(hex[:8])
}

func (s *SubmissionService) storageDir(stage, language, id string) string {
	return filepath.Join(s.dataDir, "storage", stage, language, id)
}

func (s *SubmissionService) Create(req *CreateSubmission) (*dto.SubmitResponse, error) {
	if !req.Consent {
		return nil, errors.New("consent is required")
	}
	if !models.ValidLanguage(req.Language) {
		return nil, errors.New("invalid language")
	}
	if strings.TrimSpace(req.TextContent) == "" && len(req.Files) == 0 {
		return nil, errors.New("provide text or upload files")
	}
	if len(req.Files) > MaxFiles {
		return nil, fmt.Errorf("max %d files allowed", MaxFiles)
	}
	for _, f := range req.Files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !allowedExts[ext] {
			return nil, fmt.Errorf("file type %s not allowed", ext)
		}
		if len(f.Data) > MaxFileSize {
			return nil, fmt.Errorf("file %s exceeds 20MB", f.Name)
		}
	}

	id := newSubmissionID()
	folder := s.storageDir("pending", req.Language, id)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create submission folder: %w", err)
	}

	savedPaths := make([]string, 0, len(req.Files))
	fileHashes := make([]string, 0, len(req.Files))
	allText := req.TextContent

	for _, f := range req.Files {
		path := filepath.Join(folder, filepath.Base(f.Name))
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", f.Name, err)
		}
		sum := sha256.Sum256(f.Data)
		savedPaths = append(savedPaths, path)
		fileHashes = append(fileHashes, hex.EncodeToString(sum[:]))
		allText += "\n" + extractText(path)
	}

	check := s.checker.Check(allText)

	piiJSON, _ := json.Marshal(check.PIIKinds)
	if check.PIIKinds == nil {
		piiJSON = []byte("[]")
	}
	pathsJSON, _ := json.Marshal(savedPaths)
	hashesJSON, _ := json.Marshal(fileHashes)
	metaJSON, _ := json.Marshal(map[string]interface{}{
		"file_count":  len(req.Files),
		"text_length": len(allText),
	})

	sub := models.Submission{
		ID:               id,
		Language:         req.Language,
		Status:           models.StatusPending,
		ContributorName:  req.ContributorName,
		ContributorEmail: req.ContributorEmail,
		TextContent:      req.TextContent,
		FilePaths:        datatypes.JSON(pathsJSON),
		FileHashes:       datatypes.JSON(hashesJSON),
		Metadata:         datatypes.JSON(metaJSON),
		PIIFlags:         datatypes.JSON(piiJSON),
		ProfanityFlag:    check.Profanity,
		DuplicateFlag:    check.Duplicate,
		DataCategory:     detectCategory(req.Files),
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return &dto.SubmitResponse{
		Status:       "success",
		SubmissionID: id,
		Message:      "Thank you for your contribution!",
	}, nil
}

// detectCategory picks the default data category from file extensions; the
// reviewer can override it at approval time.
func detectCategory(files []IntakeFile) string {
	if len(files) == 0 {
		return "raw_text"
	}
	hasPDF, hasZip := false, false
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if imageExts[ext] {
			return "images"
		}
		if ext == ".pdf" {
			hasPDF = true
		}
		if ext == ".zip" || ext == ".tar" || ext == ".gz" {
			hasZip = true
		}
	}
	if hasPDF {
		return "pdf"
	}
	if hasZip {
		return "zip"
	}
	return "raw_text"
}

func (s *SubmissionService) List(filters ListFilters, page, limit int) (*dto.ListSubmissionsResponse, error) {
	query := s.db.Model(&models.Submission{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Language != "" {
		query = query.Where("language = ?", filters.Language)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("contributor_name ILIKE ? OR text_content ILIKE ? OR id ILIKE ?", like, like, like)
	}
	if filters.DateFrom != "" {
		query = query.Where("created_at >= ?", filters.DateFrom)
	}
	if filters.DateTo != "" {
		query = query.Where("created_at <= ?", filters.DateTo+"T23:59:59Z")
	}

	var total int64
	query.Count(&total)

	var subs []models.Submission
	if err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&subs).Error; err != nil {
		return nil, err
	}

	return &dto.ListSubmissionsResponse{Total: total, Page: page, Submissions: subs}, nil
}

func (s *SubmissionService) Detail(id string) (*dto.SubmissionDetailResponse, error) {
	var sub models.Submission
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, ErrSubmissionNotFound
	}

	var logs []models.AuditLogEntry
	if err := s.db.Where("submission_id = ?", id).Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	previews := make([]dto.FilePreview, 0)
	for _, path := range decodePaths(sub.FilePaths) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		text := extractText(path)
		if len(text) > 1000 {
			text = text[:1000]
		}
		previews = append(previews, dto.FilePreview{File: filepath.Base(path), Preview: text})
	}

	return &dto.SubmissionDetailResponse{
		Submission:   sub,
		AuditLog:     logs,
		FilePreviews: previews,
	}, nil
}

func (s *SubmissionService) Approve(id string, req *dto.ApproveRequest, adminUser string) (*dto.DecisionResponse, error) {
	var sub models.Submission
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, ErrSubmissionNotFound
	}
	if sub.Status != models.StatusPending {
		return nil, ErrAlreadyDecided
	}

	category := req.DataCategory
	if category == "" {
		category = sub.DataCategory
	}
	if category == "" {
		category = "raw_text"
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("invalid data category %q", category)
	}

	newPaths, err := s.moveFiles(&sub, "approved")
	if err != nil {
		return nil, err
	}
	pathsJSON, _ := json.Marshal(newPaths)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"status":        models.StatusApproved,
			"data_category": category,
			"file_paths":    datatypes.JSON(pathsJSON),
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLogEntry{
			SubmissionID: id,
			Action:       models.ActionApproved,
			AdminUser:    adminUser,
			Reason:       req.Reason,
			Notes:        req.Notes,
			Timestamp:    time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve submission: %w", err)
	}

	if err := s.appendExport(&sub, category, newPaths); err != nil {
		slog.Error("export append failed", "submission", id, "error", err)
	}

	// Text-only approvals still get pushed as a generated .txt file.
	pushFiles := newPaths
	if category == "raw_text" && sub.TextContent != "" && len(newPaths) == 0 {
		txtPath := filepath.Join(s.storageDir("approved", sub.Language, id), id+".txt")
		if err := os.MkdirAll(filepath.Dir(txtPath), 0o755); err == nil {
			if err := os.WriteFile(txtPath, []byte(sub.TextContent), 0o644); err == nil {
				pushFiles = []string{txtPath}
			}
		}
	}

	pushed := false
	if s.pusher != nil && len(pushFiles) > 0 {
		go s.pusher.Push(category, pushFiles, id, sub.Language)
		pushed = true
	}

	return &dto.DecisionResponse{
		Status:          "approved",
		SubmissionID:    id,
		HFPushInitiated: pushed,
	}, nil
}

func (s *SubmissionService) Reject(id string, req *dto.RejectRequest, adminUser string) (*dto.DecisionResponse, error) {
	var sub models.Submission
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, ErrSubmissionNotFound
	}
	if sub.Status != models.StatusPending {
		return nil, ErrAlreadyDecided
	}

	reason := req.Reason
	if reason == "" {
		reason = DefaultRejectReason
	}

	newPaths, err := s.moveFiles(&sub, "rejected")
	if err != nil {
		return nil, err
	}
	pathsJSON, _ := json.Marshal(newPaths)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"status":     models.StatusRejected,
			"file_paths": datatypes.JSON(pathsJSON),
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLogEntry{
			SubmissionID: id,
			Action:       models.ActionRejected,
			AdminUser:    adminUser,
			Reason:       reason,
			Notes:        req.Notes,
			Timestamp:    time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject submission: %w", err)
	}

	return &dto.DecisionResponse{
		Status:       "rejected",
		SubmissionID: id,
		Reason:       reason,
	}, nil
}

// moveFiles relocates a submission's files from pending to the decided stage
// and removes the pending folder.
func (s *SubmissionService) moveFiles(sub *models.Submission, stage string) ([]string, error) {
	paths := decodePaths(sub.FilePaths)
	newPaths := make([]string, 0, len(paths))

	destDir := s.storageDir(stage, sub.Language, sub.ID)
	if len(paths) > 0 {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s folder: %w", stage, err)
		}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dest := filepath.Join(destDir, filepath.Base(p))
		if err := os.Rename(p, dest); err != nil {
			return nil, fmt.Errorf("failed to move %s: %w", filepath.Base(p), err)
		}
		newPaths = append(newPaths, dest)
	}

	os.RemoveAll(s.storageDir("pending", sub.Language, sub.ID))
	return newPaths, nil
}

// appendExport writes one JSONL line per approved submission.
func (s *SubmissionService) appendExport(sub *models.Submission, category string, filePaths []string) error {
	text := sub.TextContent
	for _, p := range filePaths {
		if t := extractText(p); t != "" && t != "[Image file]" && !strings.HasPrefix(t, "[") {
			text += "\n" + t
		}
	}

	entry := map[string]interface{}{
		"id":         sub.ID,
		"language":   sub.Language,
		"text":       text,
		"source":     "public_contribution",
		"category":   category,
		"created_at": sub.CreatedAt.Format(time.RFC3339),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	exportPath := filepath.Join(s.dataDir, "exports", sub.Language, sub.Language+"_approved.jsonl")
	if err := os.MkdirAll(filepath.Dir(exportPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(exportPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

func (s *SubmissionService) Stats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	counts := []struct {
		dest  *int64
		field string
		value string
	}{
		{&stats.Pending, "status", models.StatusPending},
		{&stats.Approved, "status", models.StatusApproved},
		{&stats.Rejected, "status", models.StatusRejected},
		{&stats.LangTamil, "language", "tamil"},
		{&stats.LangSinhala, "language", "sinhala"},
		{&stats.LangEnglish, "language", "english"},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Submission{}).Where(c.field+" = ?", c.value).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected

	if err := s.db.Model(&models.Feedback{}).Count(&stats.Feedbacks).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *SubmissionService) AuditLog(page, limit int) (*dto.AuditLogResponse, error) {
	var total int64
	if err := s.db.Model(&models.AuditLogEntry{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var logs []models.AuditLogEntry
	if err := s.db.Order("timestamp DESC").Limit(limit).Offset((page - 1) * limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return &dto.AuditLogResponse{Total: total, Logs: logs}, nil
}

func (s *SubmissionService) StorageInfo() (*dto.StorageInfoResponse, error) {
	var pending int64
	if err := s.db.Model(&models.Submission{}).Where("status = ?", models.StatusPending).Count(&pending).Error; err != nil {
		return nil, err
	}

	var oldest *time.Time
	row := s.db.Model(&models.Submission{}).
		Where("status = ?", models.StatusPending).
		Select("MIN(created_at)").Row()
	_ = row.Scan(&oldest)

	var totalSize int64
	pendingDir := filepath.Join(s.dataDir, "storage", "pending")
	filepath.Walk(pendingDir, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})

	resp := &dto.StorageInfoResponse{
		PendingCount:  pending,
		RetentionDays: s.retentionDays,
		StorageBytes:  totalSize,
		StorageMB:     float64(totalSize*100/(1024*1024)) / 100,
	}
	if oldest != nil {
		resp.OldestPending = oldest.Format(time.RFC3339)
	}
	return resp, nil
}

func decodePaths(raw datatypes.JSON) []string {
	var paths []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &paths)
	}
	return paths
}
