package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"driveincinema/internal/entity"
	"driveincinema/internal/repository"

	"github.com/google/uuid"
)

type QuizInput struct {
	Question      string
	Options       []string
	CorrectAnswer string
}

type QuizService struct {
	quizzes      repository.QuizRepository
	securityLogs repository.SecurityLogRepository
}

func NewQuizService(quizzes repository.QuizRepository, securityLogs repository.SecurityLogRepository) *QuizService {
	return &QuizService{quizzes: quizzes, securityLogs: securityLogs}
}

// Activate stores a new quiz and makes it the only active one.
func (s *QuizService) Activate(ctx context.Context, actor Actor, input QuizInput) (*entity.Quiz, error) {
	question := strings.TrimSpace(input.Question)
	answer := strings.TrimSpace(input.CorrectAnswer)
	options := make([]string, 0, len(input.Options))
	for _, option := range input.Options {
		option = strings.TrimSpace(option)
		if option == "" {
			return nil, ErrInvalidInput
		}
		options = append(options, option)
	}
	if question == "" || len(options) < 2 || !slices.Contains(options, answer) {
		return nil, ErrInvalidInput
	}

	quiz := &entity.Quiz{
		Question:      question,
		Options:       options,
		CorrectAnswer: answer,
	}
	if err := s.quizzes.Activate(ctx, quiz); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent activation.
			return nil, ErrConflict
		}
		return nil, err
	}
	_ = writeSecurityLog(ctx, s.securityLogs, &actor.UserID, actor.IPAddress, entity.QuizActivated, map[string]any{
		"quiz_id": quiz.ID.String(),
	})
	return quiz, nil
}

func (s *QuizService) Active(ctx context.Context) (*entity.Quiz, error) {
	quiz, err := s.quizzes.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrNotFound
	}
	return quiz, nil
}

// Answer reports whether answer is the correct option of quizID.
func (s *QuizService) Answer(ctx context.Context, quizID uuid.UUID, answer string) (bool, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return false, err
	}
	if quiz == nil {
		return false, ErrNotFound
	}
	return strings.TrimSpace(answer) == quiz.CorrectAnswer, nil
}
