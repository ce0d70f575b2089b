package models

type SeedMode string

const (
	SeedModeIfEmpty SeedMode = "if_empty"
	SeedModeForce   SeedMode = "force"
	SeedModeOff     SeedMode = "off"
)

func (m SeedMode) IsValid() bool {
	switch m {
	case SeedModeIfEmpty, SeedModeForce, SeedModeOff:
		return true
	}
	return false
}
