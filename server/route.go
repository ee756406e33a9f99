package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tickerboard/tickerboard/charts"
	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/dashboard"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/quotes"
	"go.uber.org/zap"
)

// Response api response envelope
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (s Server) registerRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	s.engine.GET("/", s.getDashboard)

	s.engine.GET("/api/ping", s.ping)

	s.engine.GET("/api/groups", s.getGroups)
}

func (s Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s Server) getGroups(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: groups.All()})
}

// getDashboard render the dashboard of a group on request, nothing is published
func (s Server) getDashboard(c *gin.Context) {
	name := c.DefaultQuery("group", s.config.Group)
	window := c.DefaultQuery("range", s.config.Range)
	if !constants.ValidRange(window) {
		c.JSON(http.StatusBadRequest, Response{Error: "invalid range: " + window})
		return
	}

	group, err := groups.Resolve(name)
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Error: err.Error()})
		return
	}

	data := make([]quotes.TickerData, 0, len(group.Tickers))
	for _, symbol := range group.Tickers {
		series, err := s.source.PriceHistory(c.Request.Context(), symbol, window)
		if err != nil {
			if errors.Is(err, constants.ErrDataUnavailable) {
				zap.L().Warn("ticker skipped", zap.Error(err), zap.String("symbol", symbol))
				continue
			}

			zap.L().Error("fetch price history failed", zap.Error(err), zap.String("symbol", symbol))
			c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
			return
		}

		financials, err := s.source.Financials(c.Request.Context(), symbol, window)
		if err != nil {
			financials = quotes.Financials{}
		}

		data = append(data, quotes.TickerData{Symbol: symbol, Series: series, Financials: financials})
	}

	rendered := charts.Render(group.Name, window, data)
	document, err := dashboard.Assemble(group.Name, window, rendered)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, constants.HTMLContentType, document)
}
