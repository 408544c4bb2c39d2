package ledger

import (
	"context"
	"encoding/json"
	"strings"

	"papertrade-backend/internal/domain"
	"papertrade-backend/internal/pkg/validation"
	"papertrade-backend/internal/quotes"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service keeps a user's cash, holdings and transaction log mutually
// consistent. Every mutating operation runs as one DB transaction; the
// cash/shares checks are re-applied as guarded UPDATEs inside it so two
// concurrent trades for the same user cannot both settle against a stale
// balance.
type Service struct {
	DB     *gorm.DB
	Quotes quotes.Provider
}

// TradeResult is the post-trade state returned for display.
type TradeResult struct {
	Quote   *quotes.Quote
	Cash    decimal.Decimal
	Holding *domain.Holding // nil when the sell closed the position
}

// resolveQuote validates the trade inputs and fetches the settlement quote.
func (s *Service) resolveQuote(ctx context.Context, symbol string, shares int64) (*quotes.Quote, error) {
	if shares <= 0 {
		return nil, ErrInvalidShareCount
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !validation.IsValidSymbol(symbol) {
		return nil, ErrInvalidSymbol
	}
	q, err := s.Quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, ErrQuoteUnavailable
	}
	if q == nil || !q.Price.IsPositive() {
		return nil, ErrInvalidSymbol
	}
	return q, nil
}

// Buy settles a share purchase: one BOUGHT transaction row, cash debited by
// price*shares, holding created or incremented. All-or-nothing.
func (s *Service) Buy(ctx context.Context, userID uuid.UUID, symbol string, shares int64) (*TradeResult, error) {
	q, err := s.resolveQuote(ctx, symbol, shares)
	if err != nil {
		return nil, err
	}
	totalCost := q.Price.Mul(decimal.NewFromInt(shares))

	var result TradeResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}
		if user.Cash.LessThan(totalCost) {
			return ErrInsufficientFunds
		}

		if err := tx.Create(&domain.Transaction{
			UserID:    userID,
			Direction: domain.DirectionBought,
			Symbol:    q.Symbol,
			Name:      q.Name,
			Shares:    shares,
			Price:     q.Price,
			Quote:     quoteSnapshot(q),
		}).Error; err != nil {
			return err
		}

		// Compare-and-set debit: loses against a concurrent trade that
		// already spent the cash, in which case the whole unit rolls back.
		debit := tx.Model(&domain.User{}).
			Where("user_id = ? AND cash >= ?", userID, totalCost).
			Update("cash", gorm.Expr("cash - ?", totalCost))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		var holding domain.Holding
		err := tx.Where("user_id = ? AND symbol = ?", userID, q.Symbol).First(&holding).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			holding = domain.Holding{
				UserID:    userID,
				Symbol:    q.Symbol,
				Name:      q.Name,
				Shares:    shares,
				LastPrice: q.Price,
			}
			if err := tx.Create(&holding).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			incr := tx.Model(&domain.Holding{}).
				Where("holding_id = ?", holding.HoldingID).
				Updates(map[string]interface{}{
					"shares":     gorm.Expr("shares + ?", shares),
					"name":       q.Name,
					"last_price": q.Price,
				})
			if incr.Error != nil {
				return incr.Error
			}
			if err := tx.Where("holding_id = ?", holding.HoldingID).First(&holding).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		result = TradeResult{Quote: q, Cash: user.Cash, Holding: &holding}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Sell settles a share sale: one SOLD transaction row, cash credited by
// price*shares, holding decremented and deleted when it reaches zero.
func (s *Service) Sell(ctx context.Context, userID uuid.UUID, symbol string, shares int64) (*TradeResult, error) {
	q, err := s.resolveQuote(ctx, symbol, shares)
	if err != nil {
		return nil, err
	}
	totalProceeds := q.Price.Mul(decimal.NewFromInt(shares))

	var result TradeResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holding domain.Holding
		if err := tx.Where("user_id = ? AND symbol = ?", userID, q.Symbol).First(&holding).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInsufficientShares
			}
			return err
		}
		if holding.Shares < shares {
			return ErrInsufficientShares
		}

		if err := tx.Create(&domain.Transaction{
			UserID:    userID,
			Direction: domain.DirectionSold,
			Symbol:    q.Symbol,
			Name:      q.Name,
			Shares:    shares,
			Price:     q.Price,
			Quote:     quoteSnapshot(q),
		}).Error; err != nil {
			return err
		}

		credit := tx.Model(&domain.User{}).
			Where("user_id = ?", userID).
			Update("cash", gorm.Expr("cash + ?", totalProceeds))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return ErrUserNotFound
		}

		// Guarded decrement; rows==0 means a concurrent sell got there first.
		decr := tx.Model(&domain.Holding{}).
			Where("holding_id = ? AND shares >= ?", holding.HoldingID, shares).
			Updates(map[string]interface{}{
				"shares":     gorm.Expr("shares - ?", shares),
				"name":       q.Name,
				"last_price": q.Price,
			})
		if decr.Error != nil {
			return decr.Error
		}
		if decr.RowsAffected == 0 {
			return ErrInsufficientShares
		}

		if err := tx.Where("holding_id = ?", holding.HoldingID).First(&holding).Error; err != nil {
			return err
		}
		remaining := &holding
		if holding.Shares == 0 {
			if err := tx.Delete(&domain.Holding{}, "holding_id = ?", holding.HoldingID).Error; err != nil {
				return err
			}
			remaining = nil
		}

		var user domain.User
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		result = TradeResult{Quote: q, Cash: user.Cash, Holding: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Deposit credits cash. Deposits are out-of-band of the trade ledger: no
// transaction row is written.
func (s *Service) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	var cash decimal.Decimal
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		credit := tx.Model(&domain.User{}).
			Where("user_id = ?", userID).
			Update("cash", gorm.Expr("cash + ?", amount))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return ErrUserNotFound
		}
		var user domain.User
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		cash = user.Cash
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return cash, nil
}

// HoldingValuation is one portfolio line priced at the current quote.
type HoldingValuation struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Shares       int64           `json:"shares"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
}

// Portfolio is the full valuation returned for display.
type Portfolio struct {
	Holdings   []HoldingValuation `json:"holdings"`
	Cash       decimal.Decimal    `json:"cash"`
	TotalValue decimal.Decimal    `json:"total_value"`
}

// Valuate re-prices every holding at the provider's current quote (not the
// stored snapshot). Any failed lookup fails the whole call; no partial
// valuation is presented.
func (s *Service) Valuate(ctx context.Context, userID uuid.UUID) (*Portfolio, error) {
	var user domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("symbol ASC").
		Find(&holdings).Error; err != nil {
		return nil, err
	}

	out := Portfolio{
		Holdings:   make([]HoldingValuation, 0, len(holdings)),
		Cash:       user.Cash,
		TotalValue: user.Cash,
	}
	for _, h := range holdings {
		q, err := s.Quotes.Lookup(ctx, h.Symbol)
		if err != nil || q == nil {
			return nil, ErrQuoteUnavailable
		}
		marketValue := q.Price.Mul(decimal.NewFromInt(h.Shares))
		out.Holdings = append(out.Holdings, HoldingValuation{
			Symbol:       h.Symbol,
			Name:         q.Name,
			Shares:       h.Shares,
			CurrentPrice: q.Price,
			MarketValue:  marketValue,
		})
		out.TotalValue = out.TotalValue.Add(marketValue)
	}
	return &out, nil
}

// History returns the user's complete trade log, oldest first. tx_id breaks
// ties so trades settling in the same timestamp tick keep a stable order.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, tx_id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func quoteSnapshot(q *quotes.Quote) datatypes.JSON {
	b, _ := json.Marshal(q)
	return datatypes.JSON(b)
}
