package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Holding is a user's current position in one symbol. Name and LastPrice are
// snapshots from the quote used in the most recent trade; the live price is
// always re-fetched for valuation. A holding whose shares reach zero is
// deleted, not kept at zero.
type Holding struct {
	HoldingID uuid.UUID       `gorm:"column:holding_id;type:uuid;primaryKey" json:"holding_id"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_symbol" json:"user_id"`
	Symbol    string          `gorm:"column:symbol;not null;uniqueIndex:idx_user_symbol" json:"symbol"`
	Name      string          `gorm:"column:name;not null" json:"name"`
	Shares    int64           `gorm:"column:shares;not null" json:"shares"`
	LastPrice decimal.Decimal `gorm:"column:last_price;type:decimal(18,2);not null" json:"last_price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (Holding) TableName() string {
	return "holdings"
}

// BeforeCreate: never insert zero UUID for primary key; generate random when not set.
func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.HoldingID == uuid.Nil {
		h.HoldingID = uuid.New()
	}
	return nil
}
