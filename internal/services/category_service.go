package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "pesowise/internal/errors"
	"pesowise/internal/models"
)

// defaultCategoryIcon is used when the user does not pick an icon.
const defaultCategoryIcon = "🏷️"

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new user-defined category. Names are unique
// per owner, and the built-in set counts toward that uniqueness.
func (s *categoryService) CreateCategory(userID uint, name, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if icon == "" {
		icon = defaultCategoryIcon
	}

	for _, builtin := range models.BuiltinCategories() {
		if strings.EqualFold(builtin.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Icon:   icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves the user's categories with the built-in
// set first, in creation order after that. A built-in is synthesized on
// read (no row id) unless a stored row of the same name shadows it, as
// happens after a demo reseed.
func (s *categoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	var own []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&own).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	for _, builtin := range models.BuiltinCategories() {
		shadowed := false
		for i := range own {
			if strings.EqualFold(own[i].Name, builtin.Name) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			categories = append(categories, builtin)
		}
	}
	categories = append(categories, own...)
	return categories, nil
}

// DeleteCategory deletes a user-defined category scoped to its owner
// and reports the number of rows removed. Built-ins have no rows and
// therefore cannot be deleted. Existing transactions keep their
// category label; it is a plain string, not a foreign key.
func (s *categoryService) DeleteCategory(userID, categoryID uint) (int64, error) {
	res := s.db.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&models.Category{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}
