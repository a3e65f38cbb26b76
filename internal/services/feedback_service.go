package services

import (
	"fmt"

	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/models"
	"gorm.io/gorm"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) Create(req *dto.FeedbackRequest) error {
	fb := models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.db.Create(&fb).Error; err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}
	return nil
}

func (s *FeedbackService) List() (*dto.FeedbacksResponse, error) {
	var feedbacks []models.Feedback
	if err := s.db.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	return &dto.FeedbacksResponse{Feedbacks: feedbacks}, nil
}
