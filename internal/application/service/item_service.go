package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// ItemService handles item master data operations
type ItemService struct {
	itemRepo        repository.ItemRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
) *ItemService {
	return &ItemService{
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	SubCategoryID   *uuid.UUID
	ItemName        string
	SizeInch        string
	SizeMM          string
	ItemKg          float64
	WeightPerPL     float64
	WeightUnit      string
	TotalPL         float64
	DozenWeight     float64
	LowStockWarning int
}

// CreateItem creates a new item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewBadRequestError("Category does not exist")
	}

	if input.SubCategoryID != nil {
		sub, err := s.subCategoryRepo.GetByID(ctx, *input.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil || sub.CategoryID != input.CategoryID {
			return nil, apperror.NewBadRequestError("Subcategory does not belong to the category")
		}
	}

	item := &entity.Item{
		UserID:          input.UserID,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
		ItemName:        input.ItemName,
		SizeInch:        input.SizeInch,
		SizeMM:          input.SizeMM,
		ItemKg:          input.ItemKg,
		WeightPerPL:     input.WeightPerPL,
		WeightUnit:      input.WeightUnit,
		TotalPL:         input.TotalPL,
		DozenWeight:     input.DozenWeight,
		LowStockWarning: input.LowStockWarning,
	}
	if item.WeightUnit == "" {
		item.WeightUnit = "Kg"
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with optional search and category filter
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.Result[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.Size, total)
	return pagination.NewResult(items, pag), nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID              uuid.UUID
	CategoryID      *uuid.UUID
	SubCategoryID   *uuid.UUID
	ItemName        string
	SizeInch        *string
	SizeMM          *string
	ItemKg          *float64
	WeightPerPL     *float64
	WeightUnit      *string
	TotalPL         *float64
	DozenWeight     *float64
	LowStockWarning *int
}

// UpdateItem updates an item
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewBadRequestError("Category does not exist")
		}
		item.CategoryID = *input.CategoryID
	}

	if input.SubCategoryID != nil {
		sub, err := s.subCategoryRepo.GetByID(ctx, *input.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil || sub.CategoryID != item.CategoryID {
			return nil, apperror.NewBadRequestError("Subcategory does not belong to the category")
		}
		item.SubCategoryID = input.SubCategoryID
	}

	if input.ItemName != "" {
		item.ItemName = input.ItemName
	}
	if input.SizeInch != nil {
		item.SizeInch = *input.SizeInch
	}
	if input.SizeMM != nil {
		item.SizeMM = *input.SizeMM
	}
	if input.ItemKg != nil {
		item.ItemKg = *input.ItemKg
	}
	if input.WeightPerPL != nil {
		item.WeightPerPL = *input.WeightPerPL
	}
	if input.WeightUnit != nil {
		item.WeightUnit = *input.WeightUnit
	}
	if input.TotalPL != nil {
		item.TotalPL = *input.TotalPL
	}
	if input.DozenWeight != nil {
		item.DozenWeight = *input.DozenWeight
	}
	if input.LowStockWarning != nil {
		item.LowStockWarning = *input.LowStockWarning
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	return s.itemRepo.Delete(ctx, id)
}
