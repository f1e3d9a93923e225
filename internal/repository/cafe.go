// File: internal/repository/cafe.go
package repository

import (
	"context"

	"coffee-wifi/internal/database"
	"coffee-wifi/internal/model"
)

const cafeColumns = `id, name, map_url, img_url, location, seats,
	 has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price, created_at`

func scanCafe(row interface{ Scan(dest ...any) error }, cafe *model.Cafe) error {
	return row.Scan(
		&cafe.ID,
		&cafe.Name,
		&cafe.MapURL,
		&cafe.ImgURL,
		&cafe.Location,
		&cafe.Seats,
		&cafe.HasToilet,
		&cafe.HasWifi,
		&cafe.HasSockets,
		&cafe.CanTakeCalls,
		&cafe.CoffeePrice,
		&cafe.CreatedAt,
	)
}

func GetCafeByID(ctx context.Context, db database.DB, cafeID int) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`SELECT `+cafeColumns+` FROM cafes WHERE id = $1`,
		cafeID,
	)
	cafe := &model.Cafe{}
	if err := scanCafe(row, cafe); err != nil {
		return nil, wrap("GetCafeByID", err)
	}
	return cafe, nil
}

// ListCafes 回傳全部咖啡廳，依名稱排序
func ListCafes(ctx context.Context, db database.DB) ([]model.Cafe, error) {
	rows, err := db.Query(ctx,
		`SELECT `+cafeColumns+` FROM cafes ORDER BY name`,
	)
	if err != nil {
		return nil, wrap("ListCafes", err)
	}
	defer rows.Close()

	cafes := []model.Cafe{}
	for rows.Next() {
		var cafe model.Cafe
		if err := scanCafe(rows, &cafe); err != nil {
			return nil, wrap("ListCafes", err)
		}
		cafes = append(cafes, cafe)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListCafes", err)
	}
	return cafes, nil
}

// CreateCafe 新增咖啡廳；名稱重複時回傳 ErrDuplicate
func CreateCafe(ctx context.Context, db database.DB, cafe *model.Cafe) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO cafes
		   (name, map_url, img_url, location, seats,
		    has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		cafe.Name,
		cafe.MapURL,
		cafe.ImgURL,
		cafe.Location,
		cafe.Seats,
		cafe.HasToilet,
		cafe.HasWifi,
		cafe.HasSockets,
		cafe.CanTakeCalls,
		cafe.CoffeePrice,
	)
	if err := row.Scan(&cafe.ID, &cafe.CreatedAt); err != nil {
		return nil, wrap("CreateCafe", err)
	}
	return cafe, nil
}

// DeleteCafe 刪除咖啡廳；id 不存在時回傳 ErrNotFound（刪除非冪等）
func DeleteCafe(ctx context.Context, db database.DB, cafeID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cafes WHERE id = $1`,
		cafeID,
	)
	if err != nil {
		return wrap("DeleteCafe", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteCafe", ErrNotFound)
	}
	return nil
}
