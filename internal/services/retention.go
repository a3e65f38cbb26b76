package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/mozhii/platform/internal/models"
)

// RetentionWorker deletes pending submissions that were never reviewed
// within the retention window, removing both the stored files and the
// database row, and recording the deletion in the audit log.
type RetentionWorker struct {
	db            *gorm.DB
	dataDir       string
	retentionDays int
	interval      time.Duration
	done          chan struct{}
}

func NewRetentionWorker(db *gorm.DB, dataDir string, retentionDays int) *RetentionWorker {
	return &RetentionWorker{
		db:            db,
		dataDir:       dataDir,
		retentionDays: retentionDays,
		interval:      6 * time.Hour,
		done:          make(chan struct{}),
	}
}

func (w *RetentionWorker) Start() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.sweep()
		for {
			select {
			case <-ticker.C:
				w.sweep()
			case <-w.done:
				return
			}
		}
	}()
	slog.Info("retention worker started", "retention_days", w.retentionDays)
}

func (w *RetentionWorker) Stop() {
	close(w.done)
}

func (w *RetentionWorker) sweep() {
	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)

	var expired []models.Submission
	if err := w.db.Where("status = ? AND created_at < ?", models.StatusPending, cutoff).Find(&expired).Error; err != nil {
		slog.Error("retention sweep query failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	for _, sub := range expired {
		dir := filepath.Join(w.dataDir, "storage", "pending", sub.Language, sub.ID)
		if err := os.RemoveAll(dir); err != nil {
			slog.Error("retention file cleanup failed", "submission", sub.ID, "error", err)
		}

		err := w.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Submission{}, "id = ?", sub.ID).Error; err != nil {
				return err
			}
			entry := models.AuditLogEntry{
				SubmissionID: sub.ID,
				Action:       models.ActionAutoDeleted,
				AdminUser:    "system",
				Reason:       fmt.Sprintf("%d-day retention expired", w.retentionDays),
			}
			return tx.Create(&entry).Error
		})
		if err != nil {
			slog.Error("retention delete failed", "submission", sub.ID, "error", err)
			continue
		}
		slog.Info("expired pending submission removed", "submission", sub.ID, "created_at", sub.CreatedAt)
	}
}
