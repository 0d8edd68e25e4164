package event

import (
	"context"

	"caseflow/persistence"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

var (
	EventPersistCreateFunc = eventPersistCreate
	MarkEventSyncedFunc    = markEventSynced
	LoadUnsyncedEventsFunc = loadUnsyncedEvents
)

func eventPersistCreate(record *EventRecord, db *gorm.DB) error {
	return db.Create(record).Error
}

func markEventSynced(id types.ID) error {
	return persistence.ActiveDataSourceManager.GormDB(context.Background()).
		Model(&EventRecord{}).Where("id = ?", id).Update("synced", true).Error
}

// loadUnsyncedEvents feeds the reconciliation sweep: events whose handlers
// did not all succeed stay unsynced and can be replayed later.
func loadUnsyncedEvents(page, size int) ([]EventRecord, error) {
	records := []EventRecord{}
	db := persistence.ActiveDataSourceManager.GormDB(context.Background())
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}
	if err := db.Where("synced = ?", false).Order("id ASC").
		Offset(offset).Limit(size).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
