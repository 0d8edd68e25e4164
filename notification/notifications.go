package notification

import (
	"fmt"

	"caseflow/event"

	"github.com/sirupsen/logrus"
)

var (
	TransitionNotifierName = "transitionNotifier"

	// DeliverFunc hands the formatted message to the delivery transport.
	// The transport (email/push) is external; the default just logs the
	// outbound message.
	DeliverFunc = deliverToLog
)

type OutboundMessage struct {
	CaseID   string `json:"caseId"`
	CaseDesc string `json:"caseDesc"`

	FromState string `json:"fromState"`
	ToState   string `json:"toState"`
	Actor     string `json:"actor"`
	Notes     string `json:"notes"`
}

// TransitionNotifyHandle forwards committed transition events to the
// notification sink. Delivery is best effort: a failure is logged and the
// event stays unsynced for reconciliation, the transition itself stands.
func TransitionNotifyHandle(e *event.EventRecord) *event.EventHandleResult {
	if e.EventCategory != event.EventCategoryStateTransition {
		return nil
	}

	message := OutboundMessage{
		CaseID:   e.CaseID.String(),
		CaseDesc: e.CaseDesc,

		FromState: e.FromState.String(),
		ToState:   e.ToState.String(),
		Actor:     e.ActorName,
		Notes:     e.Notes,
	}

	if err := DeliverFunc(&message); err != nil {
		logrus.Errorf("notification delivery failed for case %v: %v", e.CaseID, err)
		return &event.EventHandleResult{Success: false, Message: err.Error(), HandlerIdentifier: TransitionNotifierName}
	}
	return &event.EventHandleResult{Success: true, HandlerIdentifier: TransitionNotifierName}
}

func deliverToLog(m *OutboundMessage) error {
	logrus.Info(fmt.Sprintf("notify: case %s(%s) moved %s -> %s by %s", m.CaseID, m.CaseDesc, m.FromState, m.ToState, m.Actor))
	return nil
}
