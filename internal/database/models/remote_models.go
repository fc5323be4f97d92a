package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JSONMap stores loosely structured per-row settings as a jsonb column.
type JSONMap map[string]interface{}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan JSONMap: %v", value)
	}
	return json.Unmarshal(bytes, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// The advanced-feature collections live in Postgres, not in the session
// store. Ids are client-generated strings, matching the session entities.

type CustomerProfile struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	Name        string `gorm:"type:varchar(128);not null"`
	Phone       *string
	Email       *string
	Address     *string `gorm:"type:text"`
	TotalVisits int     `gorm:"not null;default:0"`
	TotalSpent  int64   `gorm:"not null;default:0"`
	LastVisit   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ChecklistTask struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)"`
	Title       string  `gorm:"type:varchar(128);not null"`
	Description *string `gorm:"type:text"`
	Role        string  `gorm:"type:varchar(32);not null"`
	Priority    string  `gorm:"type:varchar(16);not null;default:'normal'"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Completions []ChecklistCompletion `gorm:"foreignKey:TaskID"`
}

type ChecklistCompletion struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)"`
	TaskID      string  `gorm:"index;type:varchar(64);not null"`
	Date        string  `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	CompletedBy string  `gorm:"type:varchar(64);not null"`
	Notes       *string `gorm:"type:text"`
	CompletedAt time.Time
}

type KitchenOrder struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	OrderID       string `gorm:"index;type:varchar(64);not null"`
	TableNumber   *string
	Status        string `gorm:"type:varchar(16);index;not null;default:'pending'"`
	Priority      string `gorm:"type:varchar(16);not null;default:'normal'"`
	AssignedTo    *string
	EstimatedTime *int
	StartedAt     *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentMethod struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	DisplayName string `gorm:"type:varchar(128);not null"`
	Type        string `gorm:"type:varchar(32);not null;default:'cash'"`
	Icon        *string
	SortOrder   int     `gorm:"not null;default:0"`
	Settings    JSONMap `gorm:"type:jsonb"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PromoCode struct {
	ID                string  `gorm:"primaryKey;type:varchar(64)"`
	Code              string  `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name              string  `gorm:"type:varchar(128);not null"`
	Description       *string `gorm:"type:text"`
	DiscountType      string  `gorm:"type:varchar(16);not null"` // percentage | fixed
	DiscountValue     int64   `gorm:"not null"`
	MinOrderAmount    *int64
	MaxDiscountAmount *int64
	UsageLimit        *int
	UsedCount         int `gorm:"not null;default:0"`
	ValidFrom         time.Time
	ValidUntil        *time.Time
	IsActive          bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ActivityLog struct {
	ID         string `gorm:"primaryKey;type:varchar(64)"`
	UserID     string `gorm:"index;type:varchar(64);not null"`
	ActionType string `gorm:"type:varchar(32);not null"`
	EntityType string `gorm:"type:varchar(32);not null"`
	EntityID   *string
	Details    JSONMap `gorm:"type:jsonb"`
	IPAddress  *string
	UserAgent  *string
	CreatedAt  time.Time
}

func MigrateRemoteDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&CustomerProfile{},
		&ChecklistTask{},
		&ChecklistCompletion{},
		&KitchenOrder{},
		&PaymentMethod{},
		&PromoCode{},
		&ActivityLog{},
	)
}
