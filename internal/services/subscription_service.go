package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "pesowise/internal/errors"
	"pesowise/internal/models"
)

// subscriptionService handles subscription-related business logic.
type subscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(db *gorm.DB) SubscriptionServicer {
	return &subscriptionService{db: db}
}

// CreateSubscription records a recurring monthly obligation.
func (s *subscriptionService) CreateSubscription(userID uint, name string, amount int64, dueDay int) (*models.Subscription, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "subscription name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	// Day-of-month only; whether a given month actually has that day is
	// resolved by the due-date arithmetic, not at write time.
	if dueDay < 1 || dueDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
	}

	subscription := &models.Subscription{
		UserID: userID,
		Name:   name,
		Amount: amount,
		DueDay: dueDay,
	}

	if err := s.db.Create(subscription).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return subscription, nil
}

// GetUserSubscriptions retrieves the user's subscriptions ordered by due day.
func (s *subscriptionService) GetUserSubscriptions(userID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := s.db.Where("user_id = ?", userID).Order("due_day ASC").Find(&subscriptions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subscriptions, nil
}

// DeleteSubscription deletes a subscription scoped to its owner and
// reports the number of rows removed.
func (s *subscriptionService) DeleteSubscription(userID, subscriptionID uint) (int64, error) {
	res := s.db.Where("id = ? AND user_id = ?", subscriptionID, userID).Delete(&models.Subscription{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}
