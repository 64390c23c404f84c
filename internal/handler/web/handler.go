package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"WebHub/internal/domain/models"
	domsvc "WebHub/internal/domain/service"
	xhttp "WebHub/pkg/http"
	xlogger "WebHub/pkg/logger"
)

// Messages sent as plain text when a page cannot be built.
const (
	MsgCityNotFound  = "City not found."
	MsgWeatherFailed = "An error occurred while fetching the weather data."
	MsgRecipeFailed  = "An error occurred while fetching the recipe."
	MsgArticleFailed = "An error occurred while fetching the Wikipedia article. Check your Internet connection."
	MsgFormSubmitted = "Formular erfolgreich übermittelt!"
)

const (
	stockPath   = "/stock"
	weatherPath = "/weather"
)

// StockLooker runs the stock pipeline. It never fails; errors are in the view-model.
type StockLooker interface {
	Lookup(ctx context.Context, query string) models.StockViewModel
}

// WeatherLooker returns weather with coordinates for a city.
type WeatherLooker interface {
	Lookup(ctx context.Context, city string) (models.Weather, error)
}

// PagesHandler serves the HTML pages.
type PagesHandler struct {
	logger   *xlogger.Logger
	stocks   StockLooker
	weather  WeatherLooker
	recipes  domsvc.RecipeProvider
	articles domsvc.ArticleProvider
}

func NewPagesHandler(
	logger *xlogger.Logger,
	stocks StockLooker,
	weather WeatherLooker,
	recipes domsvc.RecipeProvider,
	articles domsvc.ArticleProvider,
) *PagesHandler {
	return &PagesHandler{
		logger:   logger,
		stocks:   stocks,
		weather:  weather,
		recipes:  recipes,
		articles: articles,
	}
}

func (h *PagesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET(weatherPath, h.WeatherPage)
	e.POST("/get-weather", h.GetWeather)
	e.GET("/food", h.Food)
	e.GET(stockPath, h.StockPage)
	e.POST("/get-stock", h.GetStock)
	e.GET("/wikipedia", h.Wikipedia)
	e.POST("/submit", h.Submit)
}

func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index", PageData{CurrentPath: c.Request().URL.Path})
}

func (h *PagesHandler) WeatherPage(c echo.Context) error {
	return c.Render(http.StatusOK, "weather", PageData{CurrentPath: weatherPath})
}

func (h *PagesHandler) GetWeather(c echo.Context) error {
	req := &models.WeatherRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	w, err := h.weather.Lookup(c.Request().Context(), req.CityName)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			h.logger.Warn("city not found", xlogger.String("city", req.CityName))
			return c.String(http.StatusNotFound, MsgCityNotFound)
		}
		h.logger.Error("weather lookup failed", xlogger.String("city", req.CityName), xlogger.Error(err))
		return c.String(http.StatusInternalServerError, MsgWeatherFailed)
	}
	return c.Render(http.StatusOK, "weather", PageData{CurrentPath: weatherPath, Weather: &w})
}

func (h *PagesHandler) Food(c echo.Context) error {
	r, err := h.recipes.RandomRecipe(c.Request().Context())
	if err != nil {
		h.logger.Error("random recipe failed", xlogger.Error(err))
		return c.String(http.StatusInternalServerError, MsgRecipeFailed)
	}
	return c.Render(http.StatusOK, "food", PageData{CurrentPath: c.Path(), Recipe: &r})
}

// StockPage renders the empty search form.
func (h *PagesHandler) StockPage(c echo.Context) error {
	return c.Render(http.StatusOK, "stock", PageData{CurrentPath: stockPath})
}

// GetStock always answers 200 with the stock page; failures are shown inline.
func (h *PagesHandler) GetStock(c echo.Context) error {
	req := &models.StockRequest{}
	if err := c.Bind(req); err != nil {
		h.logger.Warn("stock form unreadable", xlogger.Error(err))
	}

	vm := h.stocks.Lookup(c.Request().Context(), req.StockName)
	return c.Render(http.StatusOK, "stock", PageData{CurrentPath: stockPath, Stock: &vm})
}

func (h *PagesHandler) Wikipedia(c echo.Context) error {
	a, err := h.articles.RandomArticle(c.Request().Context())
	if err != nil {
		h.logger.Error("random article failed", xlogger.Error(err))
		return c.String(http.StatusInternalServerError, MsgArticleFailed)
	}
	return c.Render(http.StatusOK, "wiki", PageData{CurrentPath: c.Path(), Article: &a})
}

// Submit accepts any form and acknowledges it.
func (h *PagesHandler) Submit(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{Code: "ERR_BAD_REQUEST", Message: err.Error()}})
	}
	h.logger.Info("form submitted", xlogger.Any("form", form))
	return c.String(http.StatusOK, MsgFormSubmitted)
}
