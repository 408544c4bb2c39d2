package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trade directions recorded in the transaction log.
const (
	DirectionBought = "BOUGHT"
	DirectionSold   = "SOLD"
)

// Transaction is one row of the append-only trade log. Rows are created once
// per settled buy or sell and never updated or deleted. Deposits are not
// recorded here. Quote holds the raw provider payload the trade settled
// against, for audit.
type Transaction struct {
	TxID      uuid.UUID       `gorm:"column:tx_id;type:uuid;primaryKey" json:"tx_id"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Direction string          `gorm:"column:direction;type:varchar(10);not null" json:"direction"`
	Symbol    string          `gorm:"column:symbol;not null" json:"symbol"`
	Name      string          `gorm:"column:name;not null" json:"name"`
	Shares    int64           `gorm:"column:shares;not null" json:"shares"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	Quote     datatypes.JSON  `gorm:"column:quote" json:"quote,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.TxID == uuid.Nil {
		t.TxID = uuid.New()
	}
	return nil
}
