package models

import "time"

// FieldConfig represents an operator-defined attribute shown on the order
// entry form (e.g. "Topping") together with its selectable options. Only
// active configs are offered when building a new order.
type FieldConfig struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Active    bool          `gorm:"not null;default:true" json:"active"`
	Options   []FieldOption `gorm:"constraint:OnDelete:CASCADE" json:"options"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the FieldConfig model
func (FieldConfig) TableName() string {
	return "field_configs"
}

// FieldOption is one selectable value of a FieldConfig. Every option belongs
// to exactly one config; deleting the config deletes its options.
type FieldOption struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FieldConfigID uint      `gorm:"not null;index" json:"field_config_id"`
	Name          string    `gorm:"not null" json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for the FieldOption model
func (FieldOption) TableName() string {
	return "field_options"
}
