package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrPersistence is returned for any failure of the underlying store.
var ErrPersistence error = errors.New("persistence failure")

type PurchaseRepository struct {
	db Storage
}

func NewPurchaseRepository(db Storage) *PurchaseRepository {
	return &PurchaseRepository{
		db: db,
	}
}

// EnsureSchema creates the purchases table when absent. It is safe to call on every start.
func (r *PurchaseRepository) EnsureSchema() error {
	err := r.db.MigrateTable(&Purchase{})
	if err != nil {
		return fmt.Errorf("%w: migrate table(s): %w", ErrPersistence, err)
	}
	return nil
}

// InsertPurchase stores purchase unless its transaction hash is already known,
// in which case the call is a successful no-op.
func (r *PurchaseRepository) InsertPurchase(ctx context.Context, purchase Purchase) error {
	if purchase.TxHash == "" {
		return fmt.Errorf("%w: purchase has no transaction hash", ErrPersistence)
	}

	err := r.db.SaveIgnoringConflict(ctx, txHashColumn, &purchase)
	if err != nil {
		return fmt.Errorf("%w: save purchase %q: %w", ErrPersistence, purchase.TxHash, err)
	}
	return nil
}

// TopBuyers sums amounts per buyer and returns at most limit buyers ordered by
// total descending, then buyer ascending. A non-positive limit means the default of 10.
func (r *PurchaseRepository) TopBuyers(ctx context.Context, limit int) ([]BuyerTotal, error) {
	if limit <= 0 {
		limit = defaultBuyersLimit
	}

	totals := []BuyerTotal{}
	err := r.db.SumGroupedBy(ctx, &Purchase{}, buyerColumn, amountColumn, limit, &totals)
	if err != nil {
		return nil, fmt.Errorf("%w: top buyers: %w", ErrPersistence, err)
	}
	return totals, nil
}
