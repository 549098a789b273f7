package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// PartyRepository defines the interface for party master data operations
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)
	Update(ctx context.Context, party *entity.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Party, int64, error)
}

// PartyFilterParams contains filtering parameters for party queries
type PartyFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Type       *enum.PartyType
}

// CategoryRepository defines the interface for category master data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	GetWithSubCategories(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Category, error)
	CountItems(ctx context.Context, id uuid.UUID) (int64, error)
}

// SubCategoryRepository defines the interface for subcategory operations
type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *entity.SubCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error)
	Update(ctx context.Context, subCategory *entity.SubCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategoryID(ctx context.Context, categoryID uuid.UUID) error
	ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error)
}

// ItemRepository defines the interface for item master data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.Params
	Search     string
	CategoryID *uuid.UUID
}
