package source

import (
	"time"
)

type RegisterInput struct {
	Owner      string `json:"owner"`
	EnergyType string `json:"energy_type"`
	Capacity   uint64 `json:"capacity"`
}

type VerifyInput struct {
	SourceID string
	Caller   string // wallet presenting the verifier capability
}

type SourceDTO struct {
	SourceID            string    `json:"source_id"`
	Owner               string    `json:"owner"`
	EnergyType          string    `json:"energy_type"`
	Capacity            uint64    `json:"capacity"`
	Verified            bool      `json:"verified"`
	TotalEnergyProduced uint64    `json:"total_energy_produced"`
	CreatedAt           time.Time `json:"created_at"`
}
