package model

// User is a registered account on the session surface. The first user
// ever created (id 1) is the admin.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Cafes    []Cafe `json:"-" gorm:"foreignKey:UpdatedByID"`
}
