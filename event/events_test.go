package event_test

import (
	"errors"
	"testing"
	"time"

	"caseflow/domain/state"
	"caseflow/event"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/gomega"
)

func TestCreateEvent(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should return error when failed to persist event", func(t *testing.T) {
		testErr := errors.New("test error")
		event.EventPersistCreateFunc = func(record *event.EventRecord, tx *gorm.DB) error {
			return testErr
		}
		var tx = &gorm.DB{Value: 10000}
		ret, err := event.CreateEvent(1234, "HS-1234", event.EventCategoryStateTransition,
			state.DirectorReview, state.MinisterDecision, "looks complete",
			&session.Identity{ID: 333, Name: "user333"},
			types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local),
			tx,
		)
		Expect(ret).To(BeNil())
		Expect(err).To(Equal(testErr))
	})

	t.Run("should be able to create events", func(t *testing.T) {
		var ev event.EventRecord
		var db *gorm.DB
		event.EventPersistCreateFunc = func(record *event.EventRecord, tx *gorm.DB) error {
			ev = *record
			db = tx
			return nil
		}

		var tx = &gorm.DB{Value: 10000}
		ret, err := event.CreateEvent(1234, "HS-1234", event.EventCategoryStateTransition,
			state.DirectorReview, state.MinisterDecision, "looks complete",
			&session.Identity{ID: 333, Name: "user333"},
			types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local),
			tx,
		)
		Expect(err).To(BeNil())
		Expect(ret.ID).ToNot(BeZero())

		expectEvent := event.EventRecord{
			ID: ret.ID,
			Event: event.Event{
				CaseID:   1234,
				CaseDesc: "HS-1234",

				EventCategory: event.EventCategoryStateTransition,

				FromState: state.DirectorReview,
				ToState:   state.MinisterDecision,
				Notes:     "looks complete",

				ActorID:   333,
				ActorName: "user333",
			},
			Timestamp: types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local),
			Synced:    false,
		}

		Expect(*ret).To(Equal(expectEvent))
		Expect(ev).To(Equal(expectEvent))

		Expect(db).To(Equal(tx))
	})
}
