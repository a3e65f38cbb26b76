package services

import (
	"fmt"

	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) group(group string) (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Where("\"group\" = ?", group).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

func (s *SettingsService) put(group, key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Group: group, Key: key, Value: value}).Error
}

// maskToken renders a stored secret for display. The raw value never leaves
// the server once set.
func maskToken(tok string) string {
	if tok == "" {
		return ""
	}
	if len(tok) <= 8 {
		return "****"
	}
	return tok[:4] + "****" + tok[len(tok)-4:]
}

func (s *SettingsService) HFToken() (string, error) {
	settings, err := s.group(models.SettingGroupHF)
	if err != nil {
		return "", err
	}
	return settings[models.KeyHFToken], nil
}

func (s *SettingsService) HFRepo(category string) (string, error) {
	settings, err := s.group(models.SettingGroupHF)
	if err != nil {
		return "", err
	}
	return settings["repo_"+category], nil
}

func (s *SettingsService) GetHFSettings() (*dto.HFSettingsResponse, error) {
	settings, err := s.group(models.SettingGroupHF)
	if err != nil {
		return nil, err
	}
	return &dto.HFSettingsResponse{
		RepoRawText:   settings[models.KeyRepoRawText],
		RepoImages:    settings[models.KeyRepoImages],
		RepoPDF:       settings[models.KeyRepoPDF],
		RepoScanPDF:   settings[models.KeyRepoScanPDF],
		RepoZip:       settings[models.KeyRepoZip],
		HFTokenMasked: maskToken(settings[models.KeyHFToken]),
		HFAvailable:   true,
		Categories:    models.DataCategories,
	}, nil
}

// UpdateHFSettings applies a partial update. A nil token means "keep the
// stored secret"; a non-empty token replaces it.
func (s *SettingsService) UpdateHFSettings(req *dto.HFSettingsRequest) error {
	updates := map[string]*string{
		models.KeyRepoRawText: req.RepoRawText,
		models.KeyRepoImages:  req.RepoImages,
		models.KeyRepoPDF:     req.RepoPDF,
		models.KeyRepoScanPDF: req.RepoScanPDF,
		models.KeyRepoZip:     req.RepoZip,
	}
	for key, val := range updates {
		if val == nil {
			continue
		}
		if err := s.put(models.SettingGroupHF, key, *val); err != nil {
			return fmt.Errorf("failed to update %s: %w", key, err)
		}
	}
	if req.HFToken != nil && *req.HFToken != "" {
		if err := s.put(models.SettingGroupHF, models.KeyHFToken, *req.HFToken); err != nil {
			return fmt.Errorf("failed to update token: %w", err)
		}
	}
	return nil
}

func (s *SettingsService) UpdateStatsOverride(req *dto.StatsOverrideRequest) error {
	if req.ContributorsDisplay != nil {
		if err := s.put(models.SettingGroupStats, models.KeyContributorsDisplay, *req.ContributorsDisplay); err != nil {
			return err
		}
	}
	if req.DatasetsDisplay != nil {
		if err := s.put(models.SettingGroupStats, models.KeyDatasetsDisplay, *req.DatasetsDisplay); err != nil {
			return err
		}
	}
	return nil
}

// PublicStats returns the public counters, preferring the admin-set display
// overrides over computed values.
func (s *SettingsService) PublicStats() (*dto.PublicStatsResponse, error) {
	var approved, contributors int64
	if err := s.db.Model(&models.Submission{}).Where("status = ?", models.StatusApproved).Count(&approved).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Submission{}).Distinct("contributor_email").Count(&contributors).Error; err != nil {
		return nil, err
	}

	overrides, err := s.group(models.SettingGroupStats)
	if err != nil {
		return nil, err
	}

	resp := &dto.PublicStatsResponse{
		ContributorsDisplay: overrides[models.KeyContributorsDisplay],
		DatasetsDisplay:     overrides[models.KeyDatasetsDisplay],
		TotalApproved:       approved,
		TotalContributors:   contributors,
	}
	if resp.ContributorsDisplay == "" {
		resp.ContributorsDisplay = fmt.Sprintf("%d+", contributors)
	}
	if resp.DatasetsDisplay == "" {
		resp.DatasetsDisplay = fmt.Sprintf("%d+", approved)
	}
	return resp, nil
}
