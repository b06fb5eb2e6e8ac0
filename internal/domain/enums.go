package domain

// Category classifies a line item by what is being supplied.
type Category string

const (
	CategoryEquipment Category = "equipment"
	CategoryMaterial  Category = "material"
	CategoryCable     Category = "cable"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"equipment": true, "material": true, "cable": true,
}

// FindingKind classifies a technical review finding.
type FindingKind string

const (
	FindingError   FindingKind = "error"
	FindingWarning FindingKind = "warning"
	FindingSuccess FindingKind = "success"
)

// ValidFindingKinds is the canonical set of accepted finding kind strings.
var ValidFindingKinds = map[string]bool{
	"error": true, "warning": true, "success": true,
}
