package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type PortfolioHandler struct {
	createUC *portfolioUC.CreatePortfolioUseCase
	getUC    *portfolioUC.GetPortfolioUseCase
	viewUC   *portfolioUC.ViewPortfolioUseCase
	logger   logger.Logger
}

func NewPortfolioHandler(
	createUC *portfolioUC.CreatePortfolioUseCase,
	getUC *portfolioUC.GetPortfolioUseCase,
	viewUC *portfolioUC.ViewPortfolioUseCase,
	log logger.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		createUC: createUC,
		getUC:    getUC,
		viewUC:   viewUC,
		logger:   log,
	}
}

// GeneratePortfolio handles the canonical nested submission.
func (h *PortfolioHandler) GeneratePortfolio(c *gin.Context) {
	var req GeneratePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio generation", err))
		return
	}

	output, err := h.createUC.Execute(c.Request.Context(), portfolioUC.CreatePortfolioInput{
		Profile: req.ToProfile(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, envelope(CreatedPortfolioDTO{
		UniqueID:  output.Portfolio.UniqueID,
		Portfolio: output.Portfolio,
	}))
}

// GenerateLegacy accepts the flat pre-migration body and adapts it to the
// canonical shape at this boundary.
func (h *PortfolioHandler) GenerateLegacy(c *gin.Context) {
	var req LegacyGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio generation", err))
		return
	}

	output, err := h.createUC.Execute(c.Request.Context(), portfolioUC.CreatePortfolioInput{
		Profile: req.ToProfile(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, envelope(output.Portfolio))
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	output, err := h.getUC.Execute(c.Request.Context(), portfolioUC.GetPortfolioInput{
		UniqueID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, envelope(output.Portfolio))
}

func (h *PortfolioHandler) ViewPortfolio(c *gin.Context) {
	output, err := h.viewUC.Execute(c.Request.Context(), portfolioUC.ViewPortfolioInput{
		UniqueID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, envelope(output.View))
}
