package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, username, telegram_chat_id, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		account.ID, account.Username, account.TelegramChatID, account.IsActive, account.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, username, telegram_chat_id, is_active, created_at
			  FROM accounts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var a domain.Account
	if err = row.Scan(&a.ID, &a.Username, &a.TelegramChatID, &a.IsActive, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT id, username, telegram_chat_id, is_active, created_at
			  FROM accounts
			  ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Account
	for rows.Next() {
		var a domain.Account
		if err = rows.Scan(&a.ID, &a.Username, &a.TelegramChatID, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
