package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Apartment struct {
	// 基本情報
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	UnitNumber string `gorm:"type:varchar(50);not null;uniqueIndex:unit_number_idx;index:project_unit_idx,priority:2" json:"unitNumber"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Project    string `gorm:"type:varchar(255);not null;index:project_idx;index:project_unit_idx,priority:1" json:"project"`

	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Bedrooms    int     `gorm:"type:int;not null" json:"bedrooms"`
	Bathrooms   int     `gorm:"type:int;not null" json:"bathrooms"`
	Area        float64 `gorm:"type:decimal(10,2);not null" json:"area"`
	Images      URLList `gorm:"type:json;not null" json:"images"`

	// タイムスタンプ
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_apartments_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// TableName はテーブル名を明示的に指定
func (Apartment) TableName() string {
	return "apartments"
}

// BeforeCreate assigns a generated UUID when the caller did not set one.
func (a *Apartment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Images == nil {
		a.Images = URLList{}
	}
	return nil
}

// URLList stores an ordered list of image URLs as a JSON column.
type URLList []string

func (l URLList) Value() (driver.Value, error) {
	if l == nil {
		l = URLList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *URLList) Scan(value interface{}) error {
	if value == nil {
		*l = URLList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for URLList: %T", value)
	}
	if len(data) == 0 {
		*l = URLList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
