package servehttp

import (
	"net/http"

	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/engine"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterTransitionsRestAPI(r *gin.Engine, e engine.EngineTraits, middleWares ...gin.HandlerFunc) {
	handler := &transitionHandler{engine: e, validator: validator.New()}

	g := r.Group("/v1/transitions", middleWares...)
	g.POST("", handler.handleApply)

	v := r.Group("/v1/transition-validations", middleWares...)
	v.POST("", handler.handleValidate)

	c := r.Group("/v1/cases", middleWares...)
	c.GET(":id/available-transitions", handler.handleAvailableTransitions)
}

type transitionHandler struct {
	engine    engine.EngineTraits
	validator *validator.Validate
}

type transitionReply struct {
	Success  bool                     `json:"success"`
	NewState string                   `json:"newState"`
	Record   *domain.TransitionRecord `json:"record"`
}

type availableTransitionsReply struct {
	AvailableTransitions []engine.AvailableTransition `json:"availableTransitions"`
}

func (h *transitionHandler) handleApply(c *gin.Context) {
	creation := domain.TransitionCreation{}
	err := c.ShouldBindBodyWith(&creation, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err = h.validator.Struct(creation); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := h.engine.ApplyTransition(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, &transitionReply{Success: true, NewState: record.ToState.String(), Record: record})
}

func (h *transitionHandler) handleValidate(c *gin.Context) {
	query := domain.TransitionValidationQuery{}
	err := c.ShouldBindBodyWith(&query, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err = h.validator.Struct(query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	result, err := h.engine.ValidateTransition(&query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func (h *transitionHandler) handleAvailableTransitions(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	transitions, err := h.engine.CaseTransitions(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &availableTransitionsReply{AvailableTransitions: transitions})
}
