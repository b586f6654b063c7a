package repository

import (
	"context"
	"errors"

	"driveincinema/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// Activate deactivates every quiz and stores quiz as the only active one,
	// in a single transaction.
	Activate(ctx context.Context, quiz *entity.Quiz) error
	FindActive(ctx context.Context) (*entity.Quiz, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Activate(ctx context.Context, quiz *entity.Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Quiz{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		quiz.IsActive = true
		return translate(tx.Create(quiz).Error)
	})
}

func (r *quizRepository) FindActive(ctx context.Context) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&quiz).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quiz, err
}

func (r *quizRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quiz).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quiz, err
}
