package services

import (
	"context"
	"errors"
	"time"

	"dailydiet/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Create logs a meal for ownerID. The owner must exist.
func (s *MealService) Create(ctx context.Context, ownerID, name, description string, diet bool, date time.Time) (*models.Meal, error) {
	var owner models.User
	if err := s.db.WithContext(ctx).Where("id = ?", ownerID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	meal := models.Meal{
		Name:        name,
		Description: description,
		Diet:        diet,
		Date:        date,
		UserID:      owner.ID,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListByOwner(ctx context.Context, ownerID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// MealUpdate carries the optional fields of a meal update. Nil means
// "leave unchanged".
type MealUpdate struct {
	Name        *string
	Description *string
	Diet        *bool
	Date        *time.Time
}

// Update overwrites only the supplied fields and refreshes updated_at,
// returning the meal as persisted.
func (s *MealService) Update(ctx context.Context, id string, in MealUpdate) (*models.Meal, error) {
	meal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		meal.Name = *in.Name
	}
	if in.Description != nil {
		meal.Description = *in.Description
	}
	if in.Diet != nil {
		meal.Diet = *in.Diet
	}
	if in.Date != nil {
		meal.Date = *in.Date
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        meal.Name,
			"description": meal.Description,
			"diet":        meal.Diet,
			"date":        meal.Date,
			"updated_at":  now,
		}).Error; err != nil {
		return nil, err
	}

	meal.UpdatedAt = &now
	return meal, nil
}

// Delete removes the meal. Deleting an already-deleted meal reports
// ErrMealNotFound rather than succeeding silently.
func (s *MealService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
