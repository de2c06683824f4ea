package service

import (
	"context"
	"sync"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/listview"

	"go.uber.org/zap"
)

// MenuService backs both the storefront menu and the admin menu page.
// Create and update splice the entity the backend returns into local
// state; nothing is re-fetched.
type MenuService struct {
	api      CatalogAPI
	notifier Notifier
	logger   *zap.Logger

	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMenuService(api CatalogAPI, notifier Notifier, logger *zap.Logger) *MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuService{api: api, notifier: notifier, logger: logger}
}

// Load fetches the menu, narrowed server-side to categoryID when set.
func (s *MenuService) Load(ctx context.Context, categoryID *int) ([]domain.MenuItem, error) {
	items, err := s.api.ListMenu(ctx, categoryID)
	if err != nil {
		s.logger.Error("fetch menu", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items(), nil
}

func (s *MenuService) Items() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// View is the menu as the list controls ask to see it.
func (s *MenuService) View(q listview.Query) []domain.MenuItem {
	return listview.Project(s.Items(), q)
}

func (s *MenuService) Find(id int) (domain.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *MenuService) Create(ctx context.Context, input domain.MenuItemInput) (*domain.MenuItem, error) {
	item, err := s.api.CreateMenuItem(ctx, input)
	if err != nil {
		s.logger.Error("create menu item", zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося зберегти страву"))
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *item)
	s.mu.Unlock()
	s.notifier.Success("Страву додано")
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int, input domain.MenuItemInput) (*domain.MenuItem, error) {
	item, err := s.api.UpdateMenuItem(ctx, id, input)
	if err != nil {
		s.logger.Error("update menu item", zap.Int("menu_item_id", id), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося зберегти страву"))
		return nil, err
	}
	s.mu.Lock()
	s.items = spliceMenuItem(s.items, *item)
	s.mu.Unlock()
	s.notifier.Success("Страву оновлено")
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteMenuItem(ctx, id); err != nil {
		s.logger.Error("delete menu item", zap.Int("menu_item_id", id), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося видалити страву"))
		return err
	}
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Страву видалено")
	return nil
}

func spliceMenuItem(items []domain.MenuItem, updated domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items)+1)
	found := false
	for _, item := range items {
		if item.ID == updated.ID {
			item = updated
			found = true
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, updated)
	}
	return out
}

// CategoryService manages categories and knows how many menu items each
// one holds.
type CategoryService struct {
	api      CatalogAPI
	notifier Notifier
	logger   *zap.Logger

	mu         sync.RWMutex
	categories []domain.Category
	counts     map[int]int
}

func NewCategoryService(api CatalogAPI, notifier Notifier, logger *zap.Logger) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{api: api, notifier: notifier, logger: logger, counts: map[int]int{}}
}

type CategoryView struct {
	domain.Category
	ItemCount int `json:"item_count"`
}

// Load fetches categories and the menu used for per-category counts. A
// failed menu fetch leaves the counts at their last value.
func (s *CategoryService) Load(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		s.logger.Error("fetch categories", zap.Error(err))
		return nil, err
	}
	items, err := s.api.ListMenu(ctx, nil)
	s.mu.Lock()
	s.categories = categories
	if err != nil {
		s.logger.Warn("fetch menu for category counts", zap.Error(err))
	} else {
		s.counts = listview.CountByCategory(items)
	}
	s.mu.Unlock()
	return s.Views(), nil
}

func (s *CategoryService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoryService) Views() []CategoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]CategoryView, 0, len(s.categories))
	for _, category := range s.categories {
		views = append(views, CategoryView{Category: category, ItemCount: s.counts[category.ID]})
	}
	return views
}

func (s *CategoryService) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	category, err := s.api.CreateCategory(ctx, input)
	if err != nil {
		s.logger.Error("create category", zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося зберегти категорію"))
		return nil, err
	}
	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.mu.Unlock()
	s.notifier.Success("Категорію додано")
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	category, err := s.api.UpdateCategory(ctx, id, input)
	if err != nil {
		s.logger.Error("update category", zap.Int("category_id", id), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося зберегти категорію"))
		return nil, err
	}
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = *category
		}
	}
	s.mu.Unlock()
	s.notifier.Success("Категорію оновлено")
	return category, nil
}

// Delete removes the category. Its menu items become uncategorised on the
// backend; the local count for it is dropped.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		s.logger.Error("delete category", zap.Int("category_id", id), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося видалити категорію"))
		return err
	}
	s.mu.Lock()
	kept := s.categories[:0:0]
	for _, category := range s.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	s.categories = kept
	delete(s.counts, id)
	s.mu.Unlock()
	s.notifier.Success("Категорію видалено")
	return nil
}

// RestaurantService reads and edits the single restaurant profile.
type RestaurantService struct {
	api      CatalogAPI
	notifier Notifier
	logger   *zap.Logger

	mu         sync.RWMutex
	restaurant *domain.Restaurant
}

func NewRestaurantService(api CatalogAPI, notifier Notifier, logger *zap.Logger) *RestaurantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantService{api: api, notifier: notifier, logger: logger}
}

func (s *RestaurantService) Load(ctx context.Context) (*domain.Restaurant, error) {
	restaurant, err := s.api.RestaurantInfo(ctx)
	if err != nil {
		s.logger.Error("fetch restaurant", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.restaurant = restaurant
	s.mu.Unlock()
	return restaurant, nil
}

// Update saves the profile and re-fetches it.
func (s *RestaurantService) Update(ctx context.Context, restaurant domain.Restaurant) (*domain.Restaurant, error) {
	if err := s.api.UpdateRestaurant(ctx, restaurant); err != nil {
		s.logger.Error("update restaurant", zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося оновити ресторан"))
		return nil, err
	}
	s.notifier.Success("Ресторан оновлено")
	return s.Load(ctx)
}

// Reviews is the public review feed shown on the about page.
func (s *RestaurantService) Reviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.api.RestaurantReviews(ctx)
	if err != nil {
		s.logger.Error("fetch restaurant reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}
