package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

// CategoryService handles category and subcategory operations
type CategoryService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, subCategoryRepo repository.SubCategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	SubCategories []string
}

// CreateCategory creates a new category with its subcategories
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	category := &entity.Category{
		UserID: input.UserID,
		Name:   input.Name,
		Slug:   slug,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	for i, name := range input.SubCategories {
		sub := &entity.SubCategory{
			CategoryID: category.ID,
			Name:       name,
			Position:   i,
		}
		if err := s.subCategoryRepo.Create(ctx, sub); err != nil {
			return nil, err
		}
		category.SubCategories = append(category.SubCategories, *sub)
	}

	return category, nil
}

// GetCategory retrieves a category with its subcategories
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetWithSubCategories(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists categories with their subcategories
func (s *CategoryService) ListCategories(ctx context.Context, search string) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx, search)
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	ID   uuid.UUID
	Name string
}

// UpdateCategory updates a category
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	newSlug := utils.Slugify(input.Name)
	if newSlug != category.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, apperror.NewConflictError("Category with this name already exists")
		}
		category.Slug = newSlug
	}

	category.Name = input.Name

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category and its subcategories. Deletion is
// rejected while items still reference the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	count, err := s.categoryRepo.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflictError("Category is still referenced by items")
	}

	if err := s.subCategoryRepo.DeleteByCategoryID(ctx, id); err != nil {
		return err
	}

	return s.categoryRepo.Delete(ctx, id)
}

// CreateSubCategoryInput represents the create subcategory input
type CreateSubCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
	Position   int
}

// CreateSubCategory adds a subcategory to an existing category
func (s *CategoryService) CreateSubCategory(ctx context.Context, input *CreateSubCategoryInput) (*entity.SubCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	sub := &entity.SubCategory{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Position:   input.Position,
	}

	if err := s.subCategoryRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// UpdateSubCategoryInput represents the update subcategory input
type UpdateSubCategoryInput struct {
	ID       uuid.UUID
	Name     string
	Position *int
}

// UpdateSubCategory updates a subcategory
func (s *CategoryService) UpdateSubCategory(ctx context.Context, input *UpdateSubCategoryInput) (*entity.SubCategory, error) {
	sub, err := s.subCategoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}

	if input.Name != "" {
		sub.Name = input.Name
	}
	if input.Position != nil {
		sub.Position = *input.Position
	}

	if err := s.subCategoryRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// DeleteSubCategory deletes a subcategory
func (s *CategoryService) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	sub, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return apperror.NewNotFoundError("Subcategory")
	}

	return s.subCategoryRepo.Delete(ctx, id)
}
