package database

import "gorm.io/gorm"

// User represents a sales user in the database.
// The password is stored as a bcrypt hash, never in plaintext.
// CommissionDefault is the default commission rate assigned at creation;
// individual proposals carry their own commission value.
type User struct {
	gorm.Model
	Username          string  `gorm:"uniqueIndex;not null"`
	PasswordHash      string  `gorm:"not null"`
	IsAdmin           bool    `gorm:"not null;default:false"`
	CommissionDefault float64 `gorm:"not null;default:0"`
	Proposals         []Proposal
}

// Proposal represents a single financing proposal submitted by a user.
// Field names follow the business vocabulary of the sales team.
type Proposal struct {
	gorm.Model
	UserID   uint    `gorm:"not null;index"`
	Proposta string  `gorm:"not null"` // free-text proposal description/number
	Parcela  int     `gorm:"not null"` // installment count
	Banco    string  `gorm:"not null"`
	Valor    float64 `gorm:"not null"`
	Tipo     string  `gorm:"not null"` // novo, refinanciamento, portabilidade, ...
	Comissao float64 `gorm:"not null"`
}

// CommissionRate represents the commission percentage agreed with a user for
// a specific bank and proposal type. At most one rate exists per combination.
type CommissionRate struct {
	gorm.Model
	UserID     uint    `gorm:"not null;uniqueIndex:idx_commission_rate"`
	Banco      string  `gorm:"not null;uniqueIndex:idx_commission_rate"`
	Tipo       string  `gorm:"not null;uniqueIndex:idx_commission_rate"`
	Percentual float64 `gorm:"not null"`
}
