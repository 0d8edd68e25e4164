package event_test

import (
	"testing"
	"time"

	"caseflow/domain/state"
	"caseflow/event"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func TestInvokeHandlers(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should invoke all registered event handlers", func(t *testing.T) {
		origin := event.EventHandlers
		defer func() { event.EventHandlers = origin }()
		event.EventHandlers = []event.EventHandler{}

		event.EventHandlers = append(event.EventHandlers, func(e *event.EventRecord) *event.EventHandleResult {
			return nil
		})
		event.EventHandlers = append(event.EventHandlers, func(e *event.EventRecord) *event.EventHandleResult {
			return &event.EventHandleResult{Success: true, Message: "success", HandlerIdentifier: "all-success-handler"}
		})
		event.EventHandlers = append(event.EventHandlers, func(e *event.EventRecord) *event.EventHandleResult {
			return &event.EventHandleResult{Success: false, Message: "failure", HandlerIdentifier: "all-failure-handler"}
		})

		ev := event.EventRecord{
			Event: event.Event{
				CaseID:   1234,
				CaseDesc: "HS-1234",

				EventCategory: event.EventCategoryStateTransition,
				FromState:     state.Draft,
				ToState:       state.IntakeReview,

				ActorID:   333,
				ActorName: "user333",
			},
			Timestamp: types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local),
			Synced:    false,
		}

		ret := event.InvokeHandlersFunc(&ev)
		Expect(ret).To(Equal([]event.EventHandleResult{
			{Success: true, Message: "success", HandlerIdentifier: "all-success-handler"},
			{Success: false, Message: "failure", HandlerIdentifier: "all-failure-handler"},
		}))
	})
}

func TestDispatch(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should mark event synced only when every handler succeeded", func(t *testing.T) {
		synced := []types.ID{}
		done := make(chan struct{}, 1)
		event.MarkEventSyncedFunc = func(id types.ID) error {
			synced = append(synced, id)
			done <- struct{}{}
			return nil
		}
		event.InvokeHandlersFunc = func(record *event.EventRecord) []event.EventHandleResult {
			return []event.EventHandleResult{{Success: true, HandlerIdentifier: "h1"}}
		}

		event.DispatchFunc(&event.EventRecord{ID: 1})
		Eventually(done).Should(Receive())
		Expect(synced).To(Equal([]types.ID{1}))
	})

	t.Run("should leave event unsynced when a handler failed", func(t *testing.T) {
		synced := []types.ID{}
		event.MarkEventSyncedFunc = func(id types.ID) error {
			synced = append(synced, id)
			return nil
		}
		invoked := make(chan struct{}, 1)
		event.InvokeHandlersFunc = func(record *event.EventRecord) []event.EventHandleResult {
			defer func() { invoked <- struct{}{} }()
			return []event.EventHandleResult{
				{Success: true, HandlerIdentifier: "h1"},
				{Success: false, HandlerIdentifier: "h2"},
			}
		}

		event.DispatchFunc(&event.EventRecord{ID: 2})
		Eventually(invoked).Should(Receive())
		Consistently(func() []types.ID { return synced }).Should(BeEmpty())
	})
}
