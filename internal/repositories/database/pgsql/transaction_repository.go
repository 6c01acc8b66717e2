package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository is the storage side of the balance maintenance
// engine. Each write method runs one database transaction that locks the
// account row, writes the transaction row, applies the balance delta and
// appends the audit record.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.account_id, t.category_id, t.amount, t.type,
	t.description, t.transaction_date, t.created_at, t.updated_at, a.name AS account_name, c.name AS category_name`

const transactionJoins = ` FROM transactions t
	JOIN accounts a ON a.account_id = t.account_id
	JOIN categories c ON c.category_id = t.category_id`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Type,
		&m.Description,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.AccountName,
		&m.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTransactionByID retrieves a transaction with joined display names.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + ` WHERE t.transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	transaction := mapping.ToDomainTransaction(*m)
	return &transaction, nil
}

// ListTransactions retrieves a filtered, paginated transaction list plus the
// total count. The owner scope goes through the account join.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	argPos := 1

	appendCond := func(cond string, value any) {
		where += fmt.Sprintf(cond, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.OwnerID != nil {
		appendCond(" AND a.user_id = $%d", *filter.OwnerID)
	}
	if filter.AccountID != nil {
		appendCond(" AND t.account_id = $%d", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		appendCond(" AND t.category_id = $%d", *filter.CategoryID)
	}
	if filter.CategoryType != nil {
		appendCond(" AND t.type = $%d", string(*filter.CategoryType))
	}
	if filter.MinAmount != nil {
		appendCond(" AND t.amount >= $%d", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		appendCond(" AND t.amount <= $%d", *filter.MaxAmount)
	}
	if filter.DateFrom != nil {
		appendCond(" AND t.transaction_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		appendCond(" AND t.transaction_date <= $%d", *filter.DateTo)
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+transactionJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + transactionJoins + where +
		fmt.Sprintf(` ORDER BY t.transaction_date DESC, t.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Page.PerPage, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return mapping.ToDomainTransactionSlice(ms), total, nil
}

// SearchByMinAmount returns all visible transactions with amount >= min,
// largest first.
func (r *PgxTransactionRepository) SearchByMinAmount(ctx context.Context, ownerID *string, min decimal.Decimal) ([]domain.Transaction, error) {
	where := ` WHERE t.amount >= $1`
	args := []any{min}
	if ownerID != nil {
		where += ` AND a.user_id = $2`
		args = append(args, *ownerID)
	}
	query := `SELECT ` + transactionColumns + transactionJoins + where + ` ORDER BY t.amount DESC, t.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	defer rows.Close()

	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return ms, nil
}

// lockAccountBalance takes the FOR UPDATE row lock on the account inside tx.
// Every mutation path acquires this lock before touching the transactions
// table, so concurrent writers to the same account serialize here.
func (r *PgxTransactionRepository) lockAccountBalance(ctx context.Context, tx pgx.Tx, accountID string) error {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("account not found")
		}
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	return nil
}

// applyBalanceDelta adds delta to the locked account's balance inside tx.
func (r *PgxTransactionRepository) applyBalanceDelta(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = balance + $2, updated_at = NOW() WHERE account_id = $1;`,
		accountID, delta)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to apply balance delta on account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

// insertAudit appends the audit row inside tx.
func (r *PgxTransactionRepository) insertAudit(ctx context.Context, tx pgx.Tx, audit domain.TransactionAudit) error {
	m := mapping.ToModelAudit(audit)
	_, err := tx.Exec(ctx, `
		INSERT INTO transaction_audit (transaction_id, action, old_amount, new_amount, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		m.TransactionID,
		m.Action,
		m.OldAmount,
		m.NewAmount,
		m.ChangedBy,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit row for transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// applyMutation runs the common body of a single mutation inside tx: lock the
// account, run rowWrite, apply the delta and append the audit record.
func (r *PgxTransactionRepository) applyMutation(ctx context.Context, tx pgx.Tx, m portsrepo.BalanceMutation, rowWrite func(pgx.Tx) error) error {
	if err := r.lockAccountBalance(ctx, tx, m.Transaction.AccountID); err != nil {
		return err
	}
	if err := rowWrite(tx); err != nil {
		return err
	}
	if err := r.applyBalanceDelta(ctx, tx, m.Transaction.AccountID, m.Delta); err != nil {
		return err
	}
	return r.insertAudit(ctx, tx, m.Audit)
}

// CreateTransactionTx inserts a transaction, adjusts the account balance and
// records the audit row in one database transaction.
func (r *PgxTransactionRepository) CreateTransactionTx(ctx context.Context, m portsrepo.BalanceMutation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	err = r.applyMutation(ctx, tx, m, func(tx pgx.Tx) error {
		model := mapping.ToModelTransaction(m.Transaction)
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (transaction_id, account_id, category_id, amount, type, description, transaction_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`,
			model.TransactionID,
			model.AccountID,
			model.CategoryID,
			model.Amount,
			model.Type,
			model.Description,
			model.TransactionDate,
			model.CreatedAt,
			model.LastUpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, model.TransactionID)
			}
			if conflict := conflictError(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("failed to insert transaction %s: %w", model.TransactionID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransactionTx rewrites a transaction row, applies the balance delta
// and records the audit row in one database transaction.
func (r *PgxTransactionRepository) UpdateTransactionTx(ctx context.Context, m portsrepo.BalanceMutation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	err = r.applyMutation(ctx, tx, m, func(tx pgx.Tx) error {
		return r.updateTransactionRow(ctx, tx, m.Transaction)
	})
	if err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) updateTransactionRow(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	model := mapping.ToModelTransaction(transaction)
	tag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET category_id = $2, amount = $3, type = $4, description = $5, transaction_date = $6, updated_at = $7
		WHERE transaction_id = $1;
	`,
		model.TransactionID,
		model.CategoryID,
		model.Amount,
		model.Type,
		model.Description,
		model.TransactionDate,
		model.LastUpdatedAt,
	)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update transaction %s: %w", model.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

// DeleteTransactionTx removes a transaction row, reverses its balance
// contribution and records the audit row in one database transaction. The
// audit table carries no foreign key to transactions, so the DELETE audit row
// outlives the row it describes.
func (r *PgxTransactionRepository) DeleteTransactionTx(ctx context.Context, m portsrepo.BalanceMutation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	err = r.applyMutation(ctx, tx, m, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, m.Transaction.TransactionID)
		if err != nil {
			if conflict := conflictError(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("failed to delete transaction %s: %w", m.Transaction.TransactionID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("transaction not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// BatchUpdateAmountsTx applies every mutation in one database transaction; if
// any fails, none are applied. Mutations are ordered by account ID before
// locking so concurrent batches cannot deadlock on lock order.
func (r *PgxTransactionRepository) BatchUpdateAmountsTx(ctx context.Context, ms []portsrepo.BalanceMutation) error {
	if len(ms) == 0 {
		return nil
	}

	ordered := make([]portsrepo.BalanceMutation, len(ms))
	copy(ordered, ms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Transaction.AccountID < ordered[j].Transaction.AccountID
	})

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, m := range ordered {
		if err := r.applyMutation(ctx, tx, m, func(tx pgx.Tx) error {
			return r.updateTransactionRow(ctx, tx, m.Transaction)
		}); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
