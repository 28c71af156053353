package entities

// VehicleType is the delivery vehicle size class. Pricing rules and
// default fallback prices are keyed by it.
type VehicleType string

const (
	Bestelauto VehicleType = "bestelauto"
	Bestelbus  VehicleType = "bestelbus"
	Bakwagen   VehicleType = "bakwagen"
)

const DefaultVehicleType = Bestelauto

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) Valid() bool {
	switch t {
	case Bestelauto, Bestelbus, Bakwagen:
		return true
	default:
		return false
	}
}
