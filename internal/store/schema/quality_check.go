package schema

import "time"

// QualityCheck represents the quality_checks table - an inspection result recorded against a batch
type QualityCheck struct {
	// ID is a ULID so checks sort by creation time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// ProductID references the inspected product
	ProductID string `gorm:"column:product_id;not null;type:varchar(36);index"`
	// InspectorID is the user who performed the check
	InspectorID string `gorm:"column:inspector_id;not null;type:varchar(36)"`
	// CheckType names the kind of inspection (visual, lab, temperature, ...)
	CheckType string `gorm:"column:check_type;not null;type:varchar(64)"`
	// Score is the inspection score between 0 and 100
	Score float64 `gorm:"column:score;not null;type:numeric(5,2)"`
	Notes string  `gorm:"column:notes;type:text"`
	// CertificationURL optionally links to the certificate issued for the check
	CertificationURL string `gorm:"column:certification_url;type:text"`
	// Verified reports whether the product chain verified when the check was recorded
	Verified  bool      `gorm:"column:verified;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the QualityCheck model
func (QualityCheck) TableName() string {
	return "quality_checks"
}
