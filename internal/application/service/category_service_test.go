package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	itemCounts map[uuid.UUID]int64
	subRepo    *fakeSubCategoryRepo
}

func newFakeCategoryRepo(subRepo *fakeSubCategoryRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entity.Category),
		itemCounts: make(map[uuid.UUID]int64),
		subRepo:    subRepo,
	}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	cat, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *cat
	return &copied, nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, cat := range f.categories {
		if cat.Slug == slug {
			copied := *cat
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetWithSubCategories(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	cat, err := f.GetByID(ctx, id)
	if err != nil || cat == nil {
		return cat, err
	}
	subs, _ := f.subRepo.ListByCategoryID(ctx, id)
	cat.SubCategories = subs
	return cat, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, search string) ([]entity.Category, error) {
	var out []entity.Category
	for _, cat := range f.categories {
		if search != "" && !strings.Contains(strings.ToLower(cat.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *cat)
	}
	return out, nil
}

func (f *fakeCategoryRepo) CountItems(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.itemCounts[id], nil
}

type fakeSubCategoryRepo struct {
	subs map[uuid.UUID]*entity.SubCategory
}

func newFakeSubCategoryRepo() *fakeSubCategoryRepo {
	return &fakeSubCategoryRepo{subs: make(map[uuid.UUID]*entity.SubCategory)}
}

func (f *fakeSubCategoryRepo) Create(ctx context.Context, sub *entity.SubCategory) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	stored := *sub
	f.subs[sub.ID] = &stored
	return nil
}

func (f *fakeSubCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, nil
	}
	copied := *sub
	return &copied, nil
}

func (f *fakeSubCategoryRepo) Update(ctx context.Context, sub *entity.SubCategory) error {
	stored := *sub
	f.subs[sub.ID] = &stored
	return nil
}

func (f *fakeSubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.subs, id)
	return nil
}

func (f *fakeSubCategoryRepo) DeleteByCategoryID(ctx context.Context, categoryID uuid.UUID) error {
	for id, sub := range f.subs {
		if sub.CategoryID == categoryID {
			delete(f.subs, id)
		}
	}
	return nil
}

func (f *fakeSubCategoryRepo) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error) {
	var out []entity.SubCategory
	for _, sub := range f.subs {
		if sub.CategoryID == categoryID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func newCategoryServiceForTest() (*CategoryService, *fakeCategoryRepo, *fakeSubCategoryRepo) {
	subRepo := newFakeSubCategoryRepo()
	catRepo := newFakeCategoryRepo(subRepo)
	return NewCategoryService(catRepo, subRepo), catRepo, subRepo
}

func TestCreateCategoryWithSubCategories(t *testing.T) {
	svc, _, subRepo := newCategoryServiceForTest()

	category, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{
		UserID:        uuid.New(),
		Name:          "Pipe Fittings",
		SubCategories: []string{"Elbows", "Tees", "Reducers"},
	})

	require.NoError(t, err)
	assert.Equal(t, "pipe-fittings", category.Slug)
	require.Len(t, category.SubCategories, 3)
	// Subcategories keep their submission order.
	assert.Equal(t, 0, category.SubCategories[0].Position)
	assert.Equal(t, "Elbows", category.SubCategories[0].Name)
	assert.Equal(t, 2, category.SubCategories[2].Position)
	assert.Len(t, subRepo.subs, 3)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc, _, _ := newCategoryServiceForTest()

	_, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Pipe Fittings"})
	require.NoError(t, err)

	// Same slug even though the casing differs.
	_, err = svc.CreateCategory(context.Background(), &CreateCategoryInput{Name: "PIPE FITTINGS"})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestDeleteCategoryBlockedByItems(t *testing.T) {
	svc, catRepo, _ := newCategoryServiceForTest()

	category, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Valves"})
	require.NoError(t, err)
	catRepo.itemCounts[category.ID] = 3

	err = svc.DeleteCategory(context.Background(), category.ID)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	// Category survives the rejected delete.
	remaining, _ := catRepo.GetByID(context.Background(), category.ID)
	assert.NotNil(t, remaining)
}

func TestDeleteCategoryCascadesSubCategories(t *testing.T) {
	svc, catRepo, subRepo := newCategoryServiceForTest()

	category, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{
		Name:          "Valves",
		SubCategories: []string{"Ball", "Gate"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))

	assert.Empty(t, subRepo.subs)
	assert.Empty(t, catRepo.categories)
}

func TestUpdateCategoryReslugs(t *testing.T) {
	svc, _, _ := newCategoryServiceForTest()

	category, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Valves"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:   category.ID,
		Name: "Industrial Valves",
	})

	require.NoError(t, err)
	assert.Equal(t, "industrial-valves", updated.Slug)
}
