package service

import (
	"context"
	"sync"

	"delivery-console/internal/domain"
	"delivery-console/internal/listview"

	"go.uber.org/zap"
)

type UserService struct {
	api    AdminAPI
	logger *zap.Logger

	mu    sync.RWMutex
	users []domain.User
}

func NewUserService(api AdminAPI, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{api: api, logger: logger}
}

func (s *UserService) Load(ctx context.Context) ([]domain.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.logger.Error("fetch users", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return s.Users(), nil
}

func (s *UserService) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// ChangeRole applies the user the auth service answers with.
func (s *UserService) ChangeRole(ctx context.Context, userID int, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	updated, err := s.api.ChangeUserRole(ctx, userID, role)
	if err != nil {
		s.logger.Error("change role", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = *updated
		}
	}
	s.mu.Unlock()
	return updated, nil
}

type ReviewSummary struct {
	Reviews      []domain.Review         `json:"reviews"`
	Total        int                     `json:"total"`
	Average      float64                 `json:"average"`
	Positive     int                     `json:"positive"`
	Distribution []listview.RatingBucket `json:"distribution"`
	Filter       *int                    `json:"filter"`
}

type ReviewService struct {
	api    AdminAPI
	logger *zap.Logger

	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewService(api AdminAPI, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{api: api, logger: logger}
}

func (s *ReviewService) Load(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.api.ListReviews(ctx)
	if err != nil {
		s.logger.Error("fetch reviews", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
	return reviews, nil
}

// Summary aggregates over every review and lists those matching rating.
func (s *ReviewService) Summary(rating *int) ReviewSummary {
	s.mu.RLock()
	all := make([]domain.Review, len(s.reviews))
	copy(all, s.reviews)
	s.mu.RUnlock()
	return ReviewSummary{
		Reviews:      listview.FilterByRating(all, rating),
		Total:        len(all),
		Average:      listview.AverageRating(all),
		Positive:     listview.PositiveCount(all),
		Distribution: listview.RatingDistribution(all),
		Filter:       rating,
	}
}

// Delete removes a review and re-fetches the list.
func (s *ReviewService) Delete(ctx context.Context, reviewID int) error {
	if err := s.api.DeleteReview(ctx, reviewID); err != nil {
		s.logger.Error("delete review", zap.Int("review_id", reviewID), zap.Error(err))
		return err
	}
	if _, err := s.Load(ctx); err != nil {
		s.logger.Warn("refetch reviews", zap.Error(err))
	}
	return nil
}

type Dashboard struct {
	Stats        *domain.Stats     `json:"stats"`
	OrdersByDay  []domain.DayCount `json:"orders_by_day"`
	Revenue      string            `json:"revenue"`
	AverageOrder string            `json:"average_order"`
}

type DashboardService struct {
	api    AdminAPI
	logger *zap.Logger
}

func NewDashboardService(api AdminAPI, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{api: api, logger: logger}
}

// Load fetches the overview and the per-day chart independently; a failed
// chart does not hide the overview.
func (s *DashboardService) Load(ctx context.Context) (*Dashboard, error) {
	stats, err := s.api.StatsOverview(ctx)
	if err != nil {
		s.logger.Error("fetch stats overview", zap.Error(err))
		return nil, err
	}
	dashboard := &Dashboard{
		Stats:        stats,
		OrdersByDay:  []domain.DayCount{},
		Revenue:      domain.FormatMoney(stats.Revenue),
		AverageOrder: domain.FormatMoney(stats.AverageOrder),
	}
	days, err := s.api.OrdersByDay(ctx)
	if err != nil {
		s.logger.Warn("fetch orders by day", zap.Error(err))
		return dashboard, nil
	}
	dashboard.OrdersByDay = days
	return dashboard, nil
}
