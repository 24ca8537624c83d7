package model

// DirectoryCafe is the public API surface's record. It lives in its own
// database and carries no timestamps or owner attribution; coffee_price
// is supplied at creation.
type DirectoryCafe struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	MapURL       string `json:"map_url" gorm:"column:map_url;not null"`
	ImgURL       string `json:"img_url" gorm:"column:img_url;not null"`
	Location     string `json:"location" gorm:"not null"`
	Seats        string `json:"seats" gorm:"not null"`
	HasToilet    bool   `json:"has_toilet" gorm:"not null"`
	HasWifi      bool   `json:"has_wifi" gorm:"not null"`
	HasSockets   bool   `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool   `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  string `json:"coffee_price"`
}

func (DirectoryCafe) TableName() string {
	return "cafes"
}
