package servehttp

import (
	"net/http"

	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/engine"
	"caseflow/misc"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterCasesRestAPI(r *gin.Engine, e engine.EngineTraits, middleWares ...gin.HandlerFunc) {
	handler := &caseHandler{engine: e, validator: validator.New()}

	g := r.Group("/v1/cases", middleWares...)
	g.POST("", handler.handleCreate)
	g.GET(":id", handler.handleDetail)

	q := r.Group("/v1/case-queue", middleWares...)
	q.GET("", handler.handleQueue)
}

type caseHandler struct {
	engine    engine.EngineTraits
	validator *validator.Validate
}

func (h *caseHandler) handleCreate(c *gin.Context) {
	creation := domain.CaseCreation{}
	err := c.ShouldBindBodyWith(&creation, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err = h.validator.Struct(creation); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := h.engine.CreateCase(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *caseHandler) handleDetail(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := h.engine.DetailCase(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func (h *caseHandler) handleQueue(c *gin.Context) {
	query := domain.CaseQueueQuery{}
	err := c.ShouldBindWith(&query, binding.Query)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	cases, err := h.engine.QueryQueue(&query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: cases, Total: uint64(len(cases))})
}
