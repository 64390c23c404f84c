package api

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"WebHub/internal/domain/models"
	xhttp "WebHub/pkg/http"
	xlogger "WebHub/pkg/logger"
)

// StockLooker runs the stock pipeline.
type StockLooker interface {
	Lookup(ctx context.Context, query string) models.StockViewModel
}

// LookupHistory lists journaled lookups, newest first.
type LookupHistory interface {
	Recent(ctx context.Context, n int) ([]models.LookupEvent, error)
}

// StockHandler exposes the stock pipeline and the lookup journal as JSON.
type StockHandler struct {
	logger  *xlogger.Logger
	stocks  StockLooker
	history LookupHistory
}

func NewStockHandler(logger *xlogger.Logger, stocks StockLooker, history LookupHistory) *StockHandler {
	return &StockHandler{logger: logger, stocks: stocks, history: history}
}

func (h *StockHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/stock", h.Stock)
	g.GET("/lookups/recent", h.RecentLookups)
}

// Stock answers 200 with the view-model; a failed lookup carries its message in "error".
func (h *StockHandler) Stock(c echo.Context) error {
	req := &models.StockRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.stocks.Lookup(c.Request().Context(), req.StockName))
}

func (h *StockHandler) RecentLookups(c echo.Context) error {
	req := &models.RecentLookupsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	events, err := h.history.Recent(c.Request().Context(), req.N)
	if err != nil {
		if errors.Is(err, models.ErrJournalNotReadable) {
			return xhttp.AppErrorResponse(c, xhttp.NotImplementedError("lookup journal backend cannot list events"))
		}
		h.logger.Error("recent lookups error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to read lookup journal").WithError(err))
	}
	if events == nil {
		events = []models.LookupEvent{}
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.ListResponse(c, events, int64(len(events)))
}
