package models

import (
	"time"

	"github.com/heliox-inc/heliox/internal/shared/constants"
)

type FeedbackModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null"`
	Subject   string `gorm:"size:255;not null"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FeedbackModel) TableName() string {
	return constants.TableFeedback
}

// FeedbackLikeModel is a nested child of a feedback entry, purged through
// its parent rather than by company_id.
type FeedbackLikeModel struct {
	ID         uint `gorm:"primaryKey"`
	FeedbackID uint `gorm:"not null;index"`
	UserID     uint `gorm:"not null"`
	CreatedAt  time.Time
}

func (FeedbackLikeModel) TableName() string {
	return constants.TableFeedbackLikes
}
