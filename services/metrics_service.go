package services

import (
	"context"

	"dailydiet/models"

	"gorm.io/gorm"
)

type MetricsService struct {
	db *gorm.DB
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// MealMetrics aggregates a user's diet adherence.
type MealMetrics struct {
	TotalMeals          int64 `json:"totalMeals"`
	MealsOnDietCount    int64 `json:"mealsOnDietCount"`
	MealsOnNonDietCount int64 `json:"mealsOnNonDietCount"`
	LongestStreak       int   `json:"longestStreak"`
}

// Metrics computes the aggregate counts and the longest run of
// consecutive diet-adherent meals, ordered by date ascending.
func (s *MetricsService) Metrics(ctx context.Context, ownerID string) (*MealMetrics, error) {
	out := &MealMetrics{}

	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ?", ownerID).
		Count(&out.TotalMeals).Error; err != nil {
		return nil, err
	}
	if out.TotalMeals == 0 {
		return out, nil
	}

	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND diet = ?", ownerID, true).
		Count(&out.MealsOnDietCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND diet = ?", ownerID, false).
		Count(&out.MealsOnNonDietCount).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	out.LongestStreak = longestDietStreak(meals)

	return out, nil
}

// longestDietStreak scans meals already ordered by date and returns the
// length of the longest consecutive diet-adherent run.
func longestDietStreak(meals []models.Meal) int {
	longest, current := 0, 0
	for _, meal := range meals {
		if meal.Diet {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}
