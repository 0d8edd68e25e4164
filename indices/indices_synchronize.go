package indices

import (
	"fmt"
	"sync"

	"caseflow/authority"
	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/engine"
	"caseflow/domain/flow"
	"caseflow/event"
	"caseflow/session"

	"github.com/sirupsen/logrus"
)

var (
	CaseIndexEventHandlerName = "caseIndexer"
	indexRobot                = &session.Context{
		Identity: session.Identity{ID: 10, Name: "index-robot"},
		Perms:    authority.Permissions{flow.RoleIT},
	}

	lock    sync.Mutex
	running bool

	IndicesFullSyncFunc    = IndicesFullSync
	ScheduleNewSyncRunFunc = ScheduleNewSyncRun
)

// engineRef is the engine used to reload case snapshots on events. Wired
// once at startup.
var engineRef engine.EngineTraits

func BootCaseIndexing(e engine.EngineTraits) {
	engineRef = e
	event.EventHandlers = append(event.EventHandlers, IndexCaseEventHandle)
}

func ScheduleNewSyncRun(sec *session.Context) (bool, error) {
	if !sec.Perms.HasAnyRole(flow.OverrideRoles) {
		return false, bizerror.ErrForbidden
	}

	lock.Lock()
	if running {
		lock.Unlock()
		return false, nil
	}
	running = true
	lock.Unlock()

	waitRunning := sync.WaitGroup{}
	waitRunning.Add(1)
	go func() {
		waitRunning.Done()
		defer func() {
			lock.Lock()
			running = false
			lock.Unlock()
		}()
		IndicesFullSyncFunc()
	}()
	waitRunning.Wait()
	return true, nil
}

var (
	SyncBatchSize = 500
)

func IndicesFullSync() (err error) {
	defer func() {
		if ret := recover(); ret != nil {
			e, ok := ret.(error)
			if ok {
				err = e
			} else {
				err = fmt.Errorf("error on indices full sync: %v", ret)
			}
		}
	}()

	page := 1
	for {
		cases, err := engine.LoadCasesFunc(page, SyncBatchSize)
		if err != nil {
			logrus.Warnf("indices fully sync: error on retrieve cases(page = %d, pageSize = %d): %v", page, SyncBatchSize, err)
			page++
			continue
		}

		if len(cases) == 0 {
			logrus.Infof("indices fully sync: there are no more cases to index")
			return nil // loop exit
		}

		if err := IndexCases(cases); err != nil {
			logrus.Warnf("indices fully sync: error on index cases(page = %d, pageSize = %d): %v", page, SyncBatchSize, err)
		}
		page++
	}
}

func IndexCaseEventHandle(e *event.EventRecord) *event.EventHandleResult {
	if e.EventCategory != event.EventCategoryCaseCreated && e.EventCategory != event.EventCategoryStateTransition {
		return nil
	}

	detail, err := engineRef.DetailCase(e.CaseID, indexRobot)
	if err != nil {
		return &event.EventHandleResult{
			Message:           fmt.Sprintf("detail case when index case %d, %v", e.CaseID, err),
			HandlerIdentifier: CaseIndexEventHandlerName,
		}
	}
	if err := IndexCases([]domain.ApplicationCase{detail.ApplicationCase}); err != nil {
		return &event.EventHandleResult{
			Message:           fmt.Sprintf("index case %d, %v", e.CaseID, err),
			HandlerIdentifier: CaseIndexEventHandlerName,
		}
	}
	return &event.EventHandleResult{Success: true, HandlerIdentifier: CaseIndexEventHandlerName}
}
