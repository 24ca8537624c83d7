package model

import "time"

// Cafe is the session surface's record. Timestamps are stamped on every
// write and UpdatedByID points at the user who last touched the row.
type Cafe struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	Location         string    `json:"location" gorm:"not null"`
	MapURL           string    `json:"map_url" gorm:"column:map_url;not null"`
	ImgURL           string    `json:"img_url" gorm:"column:img_url;not null"`
	HasWifi          bool      `json:"has_wifi" gorm:"not null"`
	HasSockets       bool      `json:"has_sockets" gorm:"not null"`
	HasToilet        bool      `json:"has_toilet" gorm:"not null"`
	CanTakeCalls     bool      `json:"can_take_calls" gorm:"not null"`
	Seats            string    `json:"seats"`
	CoffeePrice      string    `json:"coffee_price"`
	CreationTime     time.Time `json:"creation_time" gorm:"not null"`
	ModificationTime time.Time `json:"modification_time" gorm:"not null"`
	UpdatedByID      *uint     `json:"updated_by_id"`
}
