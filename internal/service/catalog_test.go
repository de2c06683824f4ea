package service_test

import (
	"context"
	"testing"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/listview"
	"delivery-console/internal/mocks"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestMenuService_SplicesAuthoritativeEntity(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewMenuService(api, notifier, nil)
	ctx := context.Background()

	api.On("ListMenu", mock.Anything, (*int)(nil)).Return([]domain.MenuItem{
		{ID: 1, Name: "Борщ", Price: 100},
		{ID: 2, Name: "Деруни", Price: 200},
	}, nil).Once()
	_, err := svc.Load(ctx, nil)
	require.NoError(t, err)

	input := domain.MenuItemInput{Name: "Борщ червоний", Price: 150}
	api.On("UpdateMenuItem", mock.Anything, 1, input).
		Return(&domain.MenuItem{ID: 1, Name: "Борщ червоний", Price: 155}, nil).Once()
	notifier.On("Success", "Страву оновлено").Return(notify.Notification{}).Once()

	updated, err := svc.Update(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, int64(155), updated.Price)

	item, ok := svc.Find(1)
	require.True(t, ok)
	assert.Equal(t, int64(155), item.Price, "backend value wins over the submitted one")

	created := domain.MenuItemInput{Name: "Вареники", Price: 120}
	api.On("CreateMenuItem", mock.Anything, created).Return(&domain.MenuItem{ID: 3, Name: "Вареники", Price: 120}, nil).Once()
	notifier.On("Success", "Страву додано").Return(notify.Notification{}).Once()
	_, err = svc.Create(ctx, created)
	require.NoError(t, err)
	assert.Len(t, svc.Items(), 3)

	api.On("DeleteMenuItem", mock.Anything, 2).Return(nil).Once()
	notifier.On("Success", "Страву видалено").Return(notify.Notification{}).Once()
	require.NoError(t, svc.Delete(ctx, 2))
	_, ok = svc.Find(2)
	assert.False(t, ok)

	api.AssertNumberOfCalls(t, "ListMenu", 1)
}

func TestMenuService_View(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	svc := service.NewMenuService(api, mocks.NewNotifier(t), nil)

	api.On("ListMenu", mock.Anything, intPtr(2)).Return([]domain.MenuItem{
		{ID: 1, Name: "Піца", Price: 500},
		{ID: 2, Name: "піца гостра", Price: 100},
		{ID: 3, Name: "Салат", Price: 300},
	}, nil).Once()
	_, err := svc.Load(context.Background(), intPtr(2))
	require.NoError(t, err)

	view := svc.View(listview.Query{Search: "ПІЦА", Sort: listview.SortPriceAsc})
	require.Len(t, view, 2)
	assert.Equal(t, 2, view[0].ID)
}

func TestMenuService_CreateErrorShowsBackendDetail(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewMenuService(api, notifier, nil)

	api.On("CreateMenuItem", mock.Anything, mock.Anything).
		Return(nil, &apiclient.APIError{StatusCode: 422, Detail: "price must be positive"}).Once()
	notifier.On("Error", "price must be positive").Return(notify.Notification{}).Once()

	_, err := svc.Create(context.Background(), domain.MenuItemInput{Name: "x"})
	assert.Error(t, err)
	assert.Empty(t, svc.Items())
}

func TestCategoryService_CountsAndSplice(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewCategoryService(api, notifier, nil)
	ctx := context.Background()

	api.On("ListCategories", mock.Anything).Return([]domain.Category{{ID: 1, Name: "Супи"}, {ID: 2, Name: "Десерти"}}, nil).Once()
	api.On("ListMenu", mock.Anything, (*int)(nil)).Return([]domain.MenuItem{
		{ID: 1, CategoryID: intPtr(1)},
		{ID: 2, CategoryID: intPtr(1)},
		{ID: 3},
	}, nil).Once()

	views, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].ItemCount)
	assert.Equal(t, 0, views[1].ItemCount)

	input := domain.CategoryInput{Name: "Солодке"}
	api.On("UpdateCategory", mock.Anything, 2, input).Return(&domain.Category{ID: 2, Name: "Солодке"}, nil).Once()
	notifier.On("Success", "Категорію оновлено").Return(notify.Notification{}).Once()
	_, err = svc.Update(ctx, 2, input)
	require.NoError(t, err)
	assert.Equal(t, "Солодке", svc.Categories()[1].Name)

	api.On("DeleteCategory", mock.Anything, 1).Return(nil).Once()
	notifier.On("Success", "Категорію видалено").Return(notify.Notification{}).Once()
	require.NoError(t, svc.Delete(ctx, 1))
	assert.Len(t, svc.Views(), 1)
}

func TestCategoryService_MenuFailureKeepsCategories(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	svc := service.NewCategoryService(api, mocks.NewNotifier(t), nil)

	api.On("ListCategories", mock.Anything).Return([]domain.Category{{ID: 1}}, nil).Once()
	api.On("ListMenu", mock.Anything, (*int)(nil)).Return(nil, assert.AnError).Once()

	views, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Zero(t, views[0].ItemCount)
}

func TestRestaurantService_UpdateRefetches(t *testing.T) {
	api := mocks.NewCatalogAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewRestaurantService(api, notifier, nil)

	restaurant := domain.Restaurant{Name: "Смачно", Phone: "+380"}
	api.On("UpdateRestaurant", mock.Anything, restaurant).Return(nil).Once()
	api.On("RestaurantInfo", mock.Anything).Return(&domain.Restaurant{ID: 1, Name: "Смачно", Phone: "+380"}, nil).Once()
	notifier.On("Success", "Ресторан оновлено").Return(notify.Notification{}).Once()

	got, err := svc.Update(context.Background(), restaurant)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}
