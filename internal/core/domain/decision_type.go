package domain

// DecisionTypeNameMaxLength bounds DecisionType.Name.
const DecisionTypeNameMaxLength = 255

// DecisionType is a category of data-sharing decision a patient can make
// (for example an opt-out of research use).
type DecisionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	AuditFields
}

func (d DecisionType) Identity() string { return d.ID }
