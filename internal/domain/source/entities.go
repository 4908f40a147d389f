package source

import (
	"time"
)

// MaxEnergyTypeLen bounds the free-text energy type label.
const MaxEnergyTypeLen = 32

type EnergySource struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	SourceID string `gorm:"column:source_id;size:32;uniqueIndex:ux_sources_source_id" json:"source_id"`
	// Wallet of the registering owner; one source per owner
	Owner               string    `gorm:"column:owner;size:32;uniqueIndex:ux_sources_owner" json:"owner"`
	EnergyType          string    `gorm:"column:energy_type;size:32" json:"energy_type"`
	Capacity            uint64    `gorm:"column:capacity" json:"capacity"`
	Verified            bool      `gorm:"column:verified" json:"verified"`
	TotalEnergyProduced uint64    `gorm:"column:total_energy_produced" json:"total_energy_produced"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (EnergySource) TableName() string { return "energy_sources" }
