package server

import (
	"net/http"

	_ "net/http/pprof"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/tickerboard/tickerboard/config"
	"github.com/tickerboard/tickerboard/sources"
	"go.uber.org/zap"
)

// Server dashboard preview server, renders on request without publishing
type Server struct {
	engine *gin.Engine
	source sources.Source
	config *config.Config
}

// NewServer create preview server
func NewServer(source sources.Source, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		engine: gin.New(),
		source: source,
		config: cfg,
	}

	server.engine.Use(server.logger(), server.recovery())

	pprof.Register(server.engine, "/v1/pprof")

	server.registerRoute()

	zap.L().Debug("register route success")

	return server
}

// Run listen and serve
func (s Server) Run(address string) error {
	zap.L().Info("listen address: " + address)
	return s.engine.Run(address)
}

func (s Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
