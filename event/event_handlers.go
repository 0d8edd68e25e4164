package event

import (
	"github.com/sirupsen/logrus"
)

/*
return nil if not support
*/
type EventHandler func(e *EventRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

var EventHandlers []EventHandler

var (
	InvokeHandlersFunc = invokeHandlers
	DispatchFunc       = dispatchAsync
)

// dispatchAsync hands the committed event to the handlers without blocking
// the caller. Handler failure never rolls back the transition; the record
// stays unsynced for the reconciliation sweep.
func dispatchAsync(record *EventRecord) {
	go func() {
		results := InvokeHandlersFunc(record)
		for _, r := range results {
			if !r.Success {
				return
			}
		}
		if err := MarkEventSyncedFunc(record.ID); err != nil {
			logrus.Errorf("failed to mark event %v synced: %v", record.ID, err)
		}
	}()
}

func invokeHandlers(record *EventRecord) []EventHandleResult {
	results := []EventHandleResult{}
	for _, handler := range EventHandlers {
		logrus.Debug("pre handle event ", record.Event)
		r := handler(record)

		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Info("post handle event. ", r)
		} else {
			logrus.Error("post handler error. ", r)
		}
	}
	return results
}
