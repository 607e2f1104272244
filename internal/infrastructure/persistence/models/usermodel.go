package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PseudoInGame string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Core         bool   `gorm:"not null;default:false"`
	Regear       bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
