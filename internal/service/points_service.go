package service

import (
	"context"
	"errors"

	"driveincinema/internal/entity"
	"driveincinema/internal/metrics"
	"driveincinema/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultPointsAward = 50
	MaxPointsAward     = 1_000_000
)

type PointsService struct {
	users        repository.UserRepository
	securityLogs repository.SecurityLogRepository
	metrics      *metrics.Metrics
}

func NewPointsService(users repository.UserRepository, securityLogs repository.SecurityLogRepository, m *metrics.Metrics) *PointsService {
	return &PointsService{users: users, securityLogs: securityLogs, metrics: m}
}

// Award adds points to userID and returns the new balance. Zero means the
// default award. Non-admins may only award themselves.
func (s *PointsService) Award(ctx context.Context, actor Actor, userID uuid.UUID, points int) (int, error) {
	if userID == uuid.Nil || points < 0 || points > MaxPointsAward {
		return 0, ErrInvalidInput
	}
	if points == 0 {
		points = DefaultPointsAward
	}
	if !actor.IsAdmin && actor.UserID != userID {
		return 0, ErrForbidden
	}

	total, err := s.users.AddPoints(ctx, userID, points)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrOutOfRange) {
			return 0, ErrInvalidInput
		}
		return 0, err
	}

	s.metrics.PointsAwarded(points)
	_ = writeSecurityLog(ctx, s.securityLogs, &actor.UserID, actor.IPAddress, entity.PointsAwarded, map[string]any{
		"user_id": userID.String(),
		"points":  points,
	})
	return total, nil
}
