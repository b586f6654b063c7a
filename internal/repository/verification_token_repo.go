package repository

import (
	"context"
	"errors"
	"time"

	"driveincinema/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VerificationTokenRepository interface {
	// Replace stores t, overwriting any token held by t.Identifier.
	Replace(ctx context.Context, t *entity.VerificationToken) error
	Find(ctx context.Context, identifier string, token string) (*entity.VerificationToken, error)
	// ConsumeVerification deletes the matching token and marks the account
	// for identifier as verified at at. ErrNotFound if the token is gone.
	ConsumeVerification(ctx context.Context, identifier string, token string, at time.Time) error
	// ConsumeReset deletes the matching token, stores passwordHash for the
	// account and revokes its sessions. ErrNotFound if the token is gone.
	ConsumeReset(ctx context.Context, identifier string, token string, passwordHash string, at time.Time) error
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

// Replace is a single upsert on identifier; concurrent callers for the same
// email all succeed and the last write wins.
func (r *verificationTokenRepository) Replace(ctx context.Context, t *entity.VerificationToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "expires", "created_at"}),
		}).
		Create(t).Error
}

func (r *verificationTokenRepository) Find(ctx context.Context, identifier string, token string) (*entity.VerificationToken, error) {
	var found entity.VerificationToken
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND token = ?", identifier, token).
		First(&found).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &found, err
}

func (r *verificationTokenRepository) ConsumeVerification(ctx context.Context, identifier string, token string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteToken(tx, identifier, token); err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("email = ?", identifier).
			Updates(map[string]any{"email_verified_at": at, "updated_at": at}).
			Error
	})
}

func (r *verificationTokenRepository) ConsumeReset(ctx context.Context, identifier string, token string, passwordHash string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteToken(tx, identifier, token); err != nil {
			return err
		}
		var user entity.User
		if err := tx.Where("email = ?", identifier).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// The code reached the mailbox, so the address is proven as well.
		if err := tx.Model(&user).Updates(map[string]any{
			"password_hash":     passwordHash,
			"email_verified_at": gorm.Expr("COALESCE(email_verified_at, ?)", at),
			"updated_at":        at,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Session{}).
			Where("user_id = ? AND revoked_at IS NULL", user.ID).
			Update("revoked_at", at).
			Error
	})
}

func deleteToken(tx *gorm.DB, identifier string, token string) error {
	result := tx.Where("identifier = ? AND token = ?", identifier, token).
		Delete(&entity.VerificationToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
