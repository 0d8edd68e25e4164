package indices

import (
	"errors"
	"net/http"

	"caseflow/bizerror"
	"caseflow/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errTooManySyncRequests = errors.New("too many index sync requests")

var (
	PathIndexRequests = "/v1/index-request"

	// one full reindex per minute is plenty
	syncLimiter = rate.NewLimiter(rate.Limit(1.0/60), 1)
)

func RegisterIndicesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathIndexRequests, middleWares...)
	g.POST("", handleIndexRequest)
}

func handleIndexRequest(c *gin.Context) {
	if !syncLimiter.Allow() {
		panic(&bizerror.ErrBadParam{Cause: errTooManySyncRequests})
	}
	success, err := ScheduleNewSyncRunFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, gin.H{"result": success})
}
