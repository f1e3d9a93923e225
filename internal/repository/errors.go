// File: internal/repository/errors.go
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// 哨兵錯誤，handler 以 errors.Is 判斷後對應 404 或 flash 訊息
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// uniqueViolation 為 PostgreSQL unique_violation 錯誤碼
const uniqueViolation = "23505"

// wrap 將底層錯誤轉為哨兵錯誤並附上操作名稱
// unique constraint 違反是重複資料的權威判定，不依賴事前檢查
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
