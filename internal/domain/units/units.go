package units

// Base is the canonical unit recipes are stored in after conversion.
type Base string

const (
	BaseGram   Base = "gm"
	BaseMl     Base = "ml"
	BasePieces Base = "pieces"
)

// multipliers into the base scale. Unrecognized units fall through to 1
// rather than failing; recipe entry relies on that.
var multipliers = map[string]float64{
	"kg":     1000,
	"gm":     1,
	"litre":  1000,
	"ml":     1,
	"pieces": 1,
}

// Factor returns the multiplier from a unit into its base scale.
func Factor(unit string) float64 {
	m, ok := multipliers[unit]
	if !ok {
		m = 1
	}
	return m
}

// ToBase converts value/unit into the base scale and reports which base
// unit the result is in.
func ToBase(value float64, unit string) (float64, Base) {
	return value * Factor(unit), baseKind(unit)
}

func baseKind(unit string) Base {
	switch unit {
	case "kg", "gm":
		return BaseGram
	case "litre", "ml":
		return BaseMl
	}
	return BasePieces
}
