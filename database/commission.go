package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommissionRateWithUser is a commission rate joined with the username it
// belongs to, used by the admin commissions view.
type CommissionRateWithUser struct {
	ID         uint
	Username   string
	Banco      string
	Tipo       string
	Percentual float64
}

// UpsertCommissionRate creates or updates the rate for a (user, banco, tipo)
// combination. Posting the same combination twice keeps a single row with the
// latest percentual.
func (c *Client) UpsertCommissionRate(ctx context.Context, rate *CommissionRate) error {
	if err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "banco"}, {Name: "tipo"}},
		// deleted_at is reset so re-adding a previously removed combination revives it
		DoUpdates: clause.AssignmentColumns([]string{"percentual", "updated_at", "deleted_at"}),
	}).Create(rate).Error; err != nil {
		log.Error("failed to upsert commission rate", "error", err, "user_id", rate.UserID)
		return err
	}
	return nil
}

// GetCommissionRate returns the rate for a (user, banco, tipo) combination,
// or nil if none is configured.
func (c *Client) GetCommissionRate(ctx context.Context, userID uint, banco, tipo string) (*CommissionRate, error) {
	var rate CommissionRate
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND banco = ? AND tipo = ?", userID, banco, tipo).
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get commission rate", "error", err, "user_id", userID)
		return nil, err
	}
	return &rate, nil
}

// ListCommissionRates returns all commission rates joined with usernames, in
// insertion order.
func (c *Client) ListCommissionRates(ctx context.Context) ([]CommissionRateWithUser, error) {
	var rows []CommissionRateWithUser
	if err := c.db.WithContext(ctx).
		Model(&CommissionRate{}).
		Select("commission_rates.id, users.username, commission_rates.banco, commission_rates.tipo, commission_rates.percentual").
		Joins("JOIN users ON users.id = commission_rates.user_id AND users.deleted_at IS NULL").
		Order("commission_rates.id ASC").
		Scan(&rows).Error; err != nil {
		log.Error("failed to list commission rates", "error", err)
		return nil, err
	}
	return rows, nil
}

// DeleteCommissionRate removes a commission rate by id.
func (c *Client) DeleteCommissionRate(ctx context.Context, id uint) error {
	if err := c.db.WithContext(ctx).Delete(&CommissionRate{}, id).Error; err != nil {
		log.Error("failed to delete commission rate", "error", err, "id", id)
		return err
	}
	return nil
}
