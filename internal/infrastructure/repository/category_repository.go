package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	domainRepo "github.com/eximdesk/eximdesk-api/internal/domain/repository"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetWithSubCategories(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_categories.position ASC")
		}).
		First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context, search string) ([]entity.Category, error) {
	var categories []entity.Category

	query := r.db.WithContext(ctx).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_categories.position ASC")
		})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) CountItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}

type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository creates a new subcategory repository
func NewSubCategoryRepository(db *gorm.DB) domainRepo.SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	return r.db.WithContext(ctx).Create(subCategory).Error
}

func (r *subCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	var subCategory entity.SubCategory
	err := r.db.WithContext(ctx).First(&subCategory, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subCategory, err
}

func (r *subCategoryRepository) Update(ctx context.Context, subCategory *entity.SubCategory) error {
	return r.db.WithContext(ctx).Save(subCategory).Error
}

func (r *subCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SubCategory{}, "id = ?", id).Error
}

func (r *subCategoryRepository) DeleteByCategoryID(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SubCategory{}, "category_id = ?", categoryID).Error
}

func (r *subCategoryRepository) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error) {
	var subCategories []entity.SubCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("position ASC").
		Find(&subCategories).Error
	return subCategories, err
}
