package models

import "gorm.io/gorm"

// WeightEntry is one observed body weight for one calendar date. At most one
// entry exists per (user, date): re-logging the same day replaces the weight.
type WeightEntry struct {
	gorm.Model
	UserID   uint    `gorm:"index:idx_weight_user_date,unique;not null" json:"-"`
	Date     string  `gorm:"index:idx_weight_user_date,unique;size:10;not null" json:"date"` // YYYY-MM-DD
	WeightKg float64 `json:"weight"`
}
