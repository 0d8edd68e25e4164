package facts

import (
	"context"
	"errors"

	"caseflow/domain"
	"caseflow/persistence"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

// CaseFactRecord is the read-side projection of the external document and
// task stores. The owning systems write it; the workflow engine only
// consults it through guards.
type CaseFactRecord struct {
	CaseID types.ID `json:"caseId" gorm:"primary_key"`

	DocumentsVerified      bool `json:"documentsVerified"`
	ControlOutcomeRecorded bool `json:"controlOutcomeRecorded"`
}

func (r *CaseFactRecord) TableName() string {
	return "case_facts"
}

// StoredFacts implements flow.Facts over the case_facts table. A missing
// row means no fact is established yet, not an error.
type StoredFacts struct {
	dataSource *persistence.DataSourceManager
}

func NewStoredFacts(ds *persistence.DataSourceManager) *StoredFacts {
	return &StoredFacts{dataSource: ds}
}

func (f *StoredFacts) DocumentsVerified(c *domain.ApplicationCase) (bool, error) {
	record, err := f.load(c.ID)
	if err != nil {
		return false, err
	}
	return record != nil && record.DocumentsVerified, nil
}

func (f *StoredFacts) ControlOutcomeRecorded(c *domain.ApplicationCase) (bool, error) {
	record, err := f.load(c.ID)
	if err != nil {
		return false, err
	}
	return record != nil && record.ControlOutcomeRecorded, nil
}

func (f *StoredFacts) load(caseId types.ID) (*CaseFactRecord, error) {
	record := CaseFactRecord{}
	err := f.dataSource.GormDB(context.Background()).
		Where(&CaseFactRecord{CaseID: caseId}).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
