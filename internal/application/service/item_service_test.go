package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

type fakeItemMasterRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemMasterRepo() *fakeItemMasterRepo {
	return &fakeItemMasterRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (f *fakeItemMasterRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItemMasterRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemMasterRepo) Update(ctx context.Context, item *entity.Item) error {
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItemMasterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItemMasterRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	var out []entity.Item
	for _, item := range f.items {
		if params.CategoryID != nil && item.CategoryID != *params.CategoryID {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(item.ItemName), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

// newItemServiceForTest seeds one category with one subcategory and returns
// their ids alongside the service.
func newItemServiceForTest(t *testing.T) (*ItemService, *fakeItemMasterRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	subRepo := newFakeSubCategoryRepo()
	catRepo := newFakeCategoryRepo(subRepo)
	itemRepo := newFakeItemMasterRepo()

	category := &entity.Category{Name: "Pipe Fittings", Slug: "pipe-fittings"}
	require.NoError(t, catRepo.Create(context.Background(), category))

	sub := &entity.SubCategory{CategoryID: category.ID, Name: "Elbows"}
	require.NoError(t, subRepo.Create(context.Background(), sub))

	return NewItemService(itemRepo, catRepo, subRepo), itemRepo, category.ID, sub.ID
}

func TestCreateItem(t *testing.T) {
	svc, _, categoryID, subCategoryID := newItemServiceForTest(t)

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{
		UserID:        uuid.New(),
		CategoryID:    categoryID,
		SubCategoryID: &subCategoryID,
		ItemName:      "90 Degree Elbow",
		SizeInch:      "2",
		ItemKg:        0.45,
	})

	require.NoError(t, err)
	assert.Equal(t, "90 Degree Elbow", item.ItemName)
	assert.Equal(t, categoryID, item.CategoryID)
	// Weight unit defaults when not provided.
	assert.Equal(t, "Kg", item.WeightUnit)
}

func TestCreateItemRejectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newItemServiceForTest(t)

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		CategoryID: uuid.New(),
		ItemName:   "Elbow",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateItemRejectsUnknownSubCategory(t *testing.T) {
	svc, _, categoryID, _ := newItemServiceForTest(t)

	unknownSub := uuid.New()

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		CategoryID:    categoryID,
		SubCategoryID: &unknownSub,
		ItemName:      "Elbow",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateItemRejectsSubCategoryOfAnotherCategory(t *testing.T) {
	subRepo := newFakeSubCategoryRepo()
	catRepo := newFakeCategoryRepo(subRepo)
	itemRepo := newFakeItemMasterRepo()
	svc := NewItemService(itemRepo, catRepo, subRepo)

	fittings := &entity.Category{Name: "Pipe Fittings", Slug: "pipe-fittings"}
	require.NoError(t, catRepo.Create(context.Background(), fittings))
	valves := &entity.Category{Name: "Valves", Slug: "valves"}
	require.NoError(t, catRepo.Create(context.Background(), valves))

	valveSub := &entity.SubCategory{CategoryID: valves.ID, Name: "Ball"}
	require.NoError(t, subRepo.Create(context.Background(), valveSub))

	// The subcategory exists but belongs to the other category.
	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		CategoryID:    fittings.ID,
		SubCategoryID: &valveSub.ID,
		ItemName:      "Elbow",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateItemPartialFields(t *testing.T) {
	svc, _, categoryID, _ := newItemServiceForTest(t)

	created, err := svc.CreateItem(context.Background(), &CreateItemInput{
		CategoryID: categoryID,
		ItemName:   "90 Degree Elbow",
		SizeInch:   "2",
		ItemKg:     0.45,
	})
	require.NoError(t, err)

	kg := 0.5
	updated, err := svc.UpdateItem(context.Background(), &UpdateItemInput{
		ID:     created.ID,
		ItemKg: &kg,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.5, updated.ItemKg)
	// Untouched fields survive a partial update.
	assert.Equal(t, "90 Degree Elbow", updated.ItemName)
	assert.Equal(t, "2", updated.SizeInch)
}

func TestUpdateItemValidatesSubCategoryAgainstCurrentCategory(t *testing.T) {
	svc, _, categoryID, _ := newItemServiceForTest(t)

	created, err := svc.CreateItem(context.Background(), &CreateItemInput{
		CategoryID: categoryID,
		ItemName:   "Elbow",
	})
	require.NoError(t, err)

	unknownSub := uuid.New()
	_, err = svc.UpdateItem(context.Background(), &UpdateItemInput{
		ID:            created.ID,
		SubCategoryID: &unknownSub,
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _, _, _ := newItemServiceForTest(t)

	_, err := svc.UpdateItem(context.Background(), &UpdateItemInput{ID: uuid.New()})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestListItemsFiltersByCategory(t *testing.T) {
	svc, _, categoryID, _ := newItemServiceForTest(t)

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{CategoryID: categoryID, ItemName: "Elbow"})
	require.NoError(t, err)

	result, err := svc.ListItems(context.Background(), &repository.ItemFilterParams{
		Pagination: pagination.DefaultParams(),
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Elbow", result.Items[0].ItemName)

	other := uuid.New()
	result, err = svc.ListItems(context.Background(), &repository.ItemFilterParams{
		Pagination: pagination.DefaultParams(),
		CategoryID: &other,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestDeleteItemNotFound(t *testing.T) {
	svc, _, _, _ := newItemServiceForTest(t)

	err := svc.DeleteItem(context.Background(), uuid.New())

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}
