package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/database"
)

// GetQuerier returns either transaction or pool, so repository
// methods work unchanged inside a caller-scoped transaction.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

type txKey struct{}
