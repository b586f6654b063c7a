package service

import (
	"context"

	"driveincinema/internal/entity"
	"driveincinema/internal/repository"
)

type DashboardSummary struct {
	Users      int64
	Products   int64
	Orders     map[entity.OrderStatus]int64
	ActiveQuiz *entity.Quiz
}

type AdminService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	quizzes  repository.QuizRepository
}

func NewAdminService(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	quizzes repository.QuizRepository,
) *AdminService {
	return &AdminService{users: users, products: products, orders: orders, quizzes: quizzes}
}

func (s *AdminService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	quiz, err := s.quizzes.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		Users:      users,
		Products:   products,
		Orders:     orders,
		ActiveQuiz: quiz,
	}, nil
}
