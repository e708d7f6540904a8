package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sessionUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/session"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type SessionHandler struct {
	sessionUseCase *sessionUC.SessionUseCase
	logger         logger.Logger
}

func NewSessionHandler(uc *sessionUC.SessionUseCase, log logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUseCase: uc, logger: log}
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("session id must be a valid UUID", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	output, err := h.sessionUseCase.ExecuteStart(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, envelope(ToSessionDTO(output.Session)))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	output, err := h.sessionUseCase.ExecuteGet(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(ToSessionDTO(output.Session)))
}

// UpdateSection takes the request body as the complete replacement value of
// the named section; the merge protocol decides how it lands.
func (h *SessionHandler) UpdateSection(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}

	value, err := io.ReadAll(c.Request.Body)
	if err != nil || len(value) == 0 {
		c.Error(apperror.NewInvalidInput("request body must contain the section value", err))
		return
	}

	output, err := h.sessionUseCase.ExecuteUpdateSection(c.Request.Context(), sessionUC.UpdateSectionInput{
		SessionID: id,
		Section:   c.Param("name"),
		Value:     value,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(ToSessionDTO(output.Session)))
}

func (h *SessionHandler) Advance(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	output, err := h.sessionUseCase.ExecuteAdvance(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(ToSessionDTO(output.Session)))
}

func (h *SessionHandler) Retreat(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	output, err := h.sessionUseCase.ExecuteRetreat(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(ToSessionDTO(output.Session)))
}

func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req SubmitSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("invalid JSON body for submission options", err))
			return
		}
	}

	output, err := h.sessionUseCase.ExecuteSubmit(c.Request.Context(), sessionUC.SubmitInput{
		SessionID: id,
		Options:   req.ToOptions(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, envelope(SubmittedSessionDTO{
		Session:   ToSessionDTO(output.Session),
		UniqueID:  output.Portfolio.UniqueID,
		Portfolio: output.Portfolio,
	}))
}

func (h *SessionHandler) Abandon(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	if err := h.sessionUseCase.ExecuteAbandon(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"deleted": true}))
}

func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	output, err := h.sessionUseCase.ExecuteReset(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, envelope(ToSessionDTO(output.Session)))
}
