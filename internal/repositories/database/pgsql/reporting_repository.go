package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/mapping"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository serves the read-only analytics queries. Aggregates
// run outside the balance engine's locks; slightly stale figures are fine.
type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for reporting data.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetFinancialOverview returns aggregate figures per user. A non-nil ownerID
// restricts the result to that single user.
func (r *PgxReportingRepository) GetFinancialOverview(ctx context.Context, ownerID *string) ([]domain.UserOverview, error) {
	query := `
		SELECT
			u.user_id, u.name, u.email,
			(SELECT COUNT(*) FROM accounts a WHERE a.user_id = u.user_id) AS total_accounts,
			COALESCE((SELECT SUM(a.balance) FROM accounts a WHERE a.user_id = u.user_id), 0) AS total_balance,
			(SELECT COUNT(*)
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = u.user_id) AS total_transactions,
			COALESCE((SELECT SUM(t.amount)
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = u.user_id AND t.type = 'income'
				AND t.transaction_date >= NOW() - INTERVAL '3 months'), 0) AS quarterly_income,
			COALESCE((SELECT SUM(ABS(t.amount))
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = u.user_id AND t.type = 'expense'
				AND t.transaction_date >= NOW() - INTERVAL '3 months'), 0) AS quarterly_expenses,
			(SELECT c.name
				FROM transactions t
				JOIN accounts a ON a.account_id = t.account_id
				JOIN categories c ON c.category_id = t.category_id
				WHERE a.user_id = u.user_id
				GROUP BY c.name ORDER BY COUNT(*) DESC, c.name ASC LIMIT 1) AS most_used_category
		FROM users u
		WHERE ($1::uuid IS NULL OR u.user_id = $1::uuid)
		ORDER BY u.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial overview: %w", err)
	}
	defer rows.Close()

	var out []domain.UserOverview
	for rows.Next() {
		var row domain.UserOverview
		var mostUsed sql.NullString
		if err := rows.Scan(
			&row.UserID,
			&row.Name,
			&row.Email,
			&row.TotalAccounts,
			&row.TotalBalance,
			&row.TotalTransactions,
			&row.QuarterlyIncome,
			&row.QuarterlyExpenses,
			&mostUsed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overview row: %w", err)
		}
		if mostUsed.Valid {
			row.MostUsedCategory = &mostUsed.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading overview rows: %w", err)
	}
	return out, nil
}

// GetMonthlyTrends returns one bucket per month over the last `months`
// months, newest first. Expense figures are reported as magnitudes.
func (r *PgxReportingRepository) GetMonthlyTrends(ctx context.Context, ownerID *string, months int) ([]domain.MonthlyTrend, error) {
	query := `
		SELECT
			to_char(date_trunc('month', t.transaction_date), 'YYYY-MM') AS month,
			COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN t.type = 'expense' THEN ABS(t.amount) ELSE 0 END), 0) AS total_expenses,
			COUNT(*) AS transaction_count,
			COUNT(DISTINCT t.category_id) AS unique_categories,
			COALESCE(AVG(CASE WHEN t.type = 'expense' THEN ABS(t.amount) END), 0) AS avg_expense_amount,
			COALESCE(MAX(CASE WHEN t.type = 'income' THEN t.amount END), 0) AS max_income_amount
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE ($1::uuid IS NULL OR a.user_id = $1::uuid)
			AND t.transaction_date >= date_trunc('month', NOW()) - make_interval(months => $2 - 1)
		GROUP BY 1
		ORDER BY 1 DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trends: %w", err)
	}
	defer rows.Close()

	var out []domain.MonthlyTrend
	for rows.Next() {
		var row domain.MonthlyTrend
		if err := rows.Scan(
			&row.Month,
			&row.TotalIncome,
			&row.TotalExpenses,
			&row.TransactionCount,
			&row.UniqueCategories,
			&row.AvgExpenseAmount,
			&row.MaxIncomeAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading trend rows: %w", err)
	}
	return out, nil
}

// GetCategoryAnalysis aggregates transactions per visible category, with
// amount and frequency ranks computed over the visible set.
func (r *PgxReportingRepository) GetCategoryAnalysis(ctx context.Context, ownerID *string) ([]domain.CategoryAnalysisRow, error) {
	query := `
		WITH scoped AS (
			SELECT t.transaction_id, t.category_id, t.amount, t.transaction_date
			FROM transactions t
			JOIN accounts a ON a.account_id = t.account_id
			WHERE ($1::uuid IS NULL OR a.user_id = $1::uuid)
		)
		SELECT
			c.category_id, c.name, c.type,
			COUNT(s.transaction_id) AS transaction_count,
			COALESCE(SUM(s.amount), 0) AS total_amount,
			COALESCE(AVG(s.amount), 0) AS avg_amount,
			MIN(s.transaction_date) AS first_transaction,
			MAX(s.transaction_date) AS last_transaction,
			RANK() OVER (ORDER BY COALESCE(SUM(s.amount), 0) DESC) AS amount_rank,
			RANK() OVER (ORDER BY COUNT(s.transaction_id) DESC) AS frequency_rank
		FROM categories c
		LEFT JOIN scoped s ON s.category_id = c.category_id
		WHERE c.deleted_at IS NULL
			AND ($1::uuid IS NULL OR c.user_id = $1::uuid OR c.user_id IS NULL)
		GROUP BY c.category_id, c.name, c.type
		ORDER BY total_amount DESC, c.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category analysis: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryAnalysisRow
	for rows.Next() {
		var row domain.CategoryAnalysisRow
		var first, last sql.NullTime
		if err := rows.Scan(
			&row.CategoryID,
			&row.Name,
			&row.Type,
			&row.TransactionCount,
			&row.TotalAmount,
			&row.AvgAmount,
			&first,
			&last,
			&row.AmountRank,
			&row.FrequencyRank,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		if first.Valid {
			t := first.Time
			row.FirstTransaction = &t
		}
		if last.Valid {
			t := last.Time
			row.LastTransaction = &t
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading analysis rows: %w", err)
	}
	return out, nil
}

// ListAuditLog returns the audit trail newest first. For non-admin scopes it
// shows rows for the owner's accounts, plus rows of deleted transactions the
// owner changed (the transaction join is gone for those).
func (r *PgxReportingRepository) ListAuditLog(ctx context.Context, ownerID *string, page pagination.Params) ([]domain.TransactionAudit, int64, error) {
	where := `
		FROM transaction_audit ta
		LEFT JOIN transactions t ON t.transaction_id = ta.transaction_id
		LEFT JOIN accounts a ON a.account_id = t.account_id
		LEFT JOIN categories c ON c.category_id = t.category_id
		LEFT JOIN users u ON u.user_id = ta.changed_by
		WHERE ($1::uuid IS NULL
			OR a.user_id = $1::uuid
			OR (t.transaction_id IS NULL AND ta.changed_by = $1::uuid))
	`

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+where, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit rows: %w", err)
	}

	query := `
		SELECT ta.audit_id, ta.transaction_id, ta.action, ta.old_amount, ta.new_amount, ta.changed_by, ta.created_at,
			COALESCE(a.name, '') AS account_name,
			COALESCE(c.name, '') AS category_name,
			COALESCE(u.name, '') AS changed_by_name
	` + where + `
		ORDER BY ta.created_at DESC, ta.audit_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit rows: %w", err)
	}
	defer rows.Close()

	var out []domain.TransactionAudit
	for rows.Next() {
		var m models.TransactionAudit
		var accountName, categoryName, changedByName string
		if err := rows.Scan(
			&m.AuditID,
			&m.TransactionID,
			&m.Action,
			&m.OldAmount,
			&m.NewAmount,
			&m.ChangedBy,
			&m.CreatedAt,
			&accountName,
			&categoryName,
			&changedByName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit row: %w", err)
		}
		d := mapping.ToDomainAudit(m)
		d.AccountName = accountName
		d.CategoryName = categoryName
		d.ChangedByName = changedByName
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading audit rows: %w", err)
	}
	return out, total, nil
}

// GetSystemStats returns the admin dashboard totals.
func (r *PgxReportingRepository) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM accounts) AS total_accounts,
			(SELECT COUNT(*) FROM transactions) AS total_transactions,
			COALESCE((SELECT SUM(balance) FROM accounts), 0) AS total_balance,
			(SELECT COUNT(*) FROM categories WHERE deleted_at IS NULL) AS total_categories;
	`
	var stats domain.SystemStats
	err := r.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalAccounts,
		&stats.TotalTransactions,
		&stats.TotalBalance,
		&stats.TotalCategories,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query system stats: %w", err)
	}
	return &stats, nil
}

// GetUserStatistics returns the per-user figures shown on the admin user
// listing. Monthly figures cover the current calendar month.
func (r *PgxReportingRepository) GetUserStatistics(ctx context.Context, userID string) (*domain.UserStatistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM accounts a WHERE a.user_id = $1) AS total_accounts,
			(SELECT COUNT(*) FROM categories c WHERE c.user_id = $1 AND c.deleted_at IS NULL) AS total_categories,
			COALESCE((SELECT SUM(a.balance) FROM accounts a WHERE a.user_id = $1), 0) AS total_balance,
			(SELECT COUNT(*)
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = $1) AS total_transactions,
			COALESCE((SELECT SUM(t.amount)
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = $1 AND t.type = 'income'
				AND t.transaction_date >= date_trunc('month', NOW())), 0) AS monthly_income,
			COALESCE((SELECT SUM(ABS(t.amount))
				FROM transactions t JOIN accounts a ON a.account_id = t.account_id
				WHERE a.user_id = $1 AND t.type = 'expense'
				AND t.transaction_date >= date_trunc('month', NOW())), 0) AS monthly_expense;
	`
	var stats domain.UserStatistics
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&stats.TotalAccounts,
		&stats.TotalCategories,
		&stats.TotalBalance,
		&stats.TotalTransactions,
		&stats.MonthlyIncome,
		&stats.MonthlyExpense,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user statistics: %w", err)
	}
	stats.MonthlyNet = stats.MonthlyIncome.Sub(stats.MonthlyExpense)
	return &stats, nil
}
