package issuance

type SubmitReadingInput struct {
	SourceID     string
	Caller       string // must be the registered owner
	EnergyAmount uint64
}

type ReadingDTO struct {
	SourceID            string `json:"source_id"`
	MintedAmount        uint64 `json:"minted_amount"`
	TotalEnergyProduced uint64 `json:"total_energy_produced"`
}
