// File: internal/model/cafe.go
package model

import "time"

// Cafe 適合工作的咖啡廳
// Seats 為描述性文字（如 "20-30"），CoffeePrice 可為空
type Cafe struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	MapURL       string    `db:"map_url" json:"map_url"`
	ImgURL       string    `db:"img_url" json:"img_url"`
	Location     string    `db:"location" json:"location"`
	Seats        string    `db:"seats" json:"seats"`
	HasToilet    bool      `db:"has_toilet" json:"has_toilet"`
	HasWifi      bool      `db:"has_wifi" json:"has_wifi"`
	HasSockets   bool      `db:"has_sockets" json:"has_sockets"`
	CanTakeCalls bool      `db:"can_take_calls" json:"can_take_calls"`
	CoffeePrice  *string   `db:"coffee_price" json:"coffee_price,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
