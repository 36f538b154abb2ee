package domain

// BusinessUnit is the code of an internal business unit owning templates and projects.
type BusinessUnit string

const (
	BusinessUnitGrigo BusinessUnit = "GRIGO"
	BusinessUnitReact BusinessUnit = "REACT"
	BusinessUnitFlow  BusinessUnit = "FLOW"
	BusinessUnitAst   BusinessUnit = "AST"
	BusinessUnitModoo BusinessUnit = "MODOO"
	BusinessUnitHead  BusinessUnit = "HEAD"
)

var businessUnits = []BusinessUnit{
	BusinessUnitGrigo,
	BusinessUnitReact,
	BusinessUnitFlow,
	BusinessUnitAst,
	BusinessUnitModoo,
	BusinessUnitHead,
}

func BusinessUnits() []BusinessUnit {
	out := make([]BusinessUnit, len(businessUnits))
	copy(out, businessUnits)
	return out
}

func (bu BusinessUnit) Valid() bool {
	for _, known := range businessUnits {
		if bu == known {
			return true
		}
	}
	return false
}
