package http

import (
	"net/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	_ "github.com/ledgerscope/explorer/internal/api/http/docs"
)

type ExplorerController interface {
	GetAccount(*gin.Context)

	GetContract(*gin.Context)
	CallContract(*gin.Context)

	GetToken(*gin.Context)
	GetTokenMetadata(*gin.Context)

	GetTransaction(*gin.Context)
	GetLatestTransactions(*gin.Context)

	GetLatestBlocks(*gin.Context)

	GetNetworkNodes(*gin.Context)
}

type Server struct {
	listenHost string
	router     *gin.Engine
}

func NewServer(host string) *Server {
	return &Server{listenHost: host, router: gin.Default()}
}

func (s *Server) RegisterRoutes(t ExplorerController) {
	base := s.router.Group(basePath)

	base.GET("/accounts/:id", t.GetAccount)

	base.GET("/contracts/:id", t.GetContract)
	base.POST("/contracts/call", t.CallContract)

	base.GET("/tokens/:id", t.GetToken)
	base.GET("/tokens/:id/metadata", t.GetTokenMetadata)

	base.GET("/transactions", t.GetLatestTransactions)
	base.GET("/transactions/:id", t.GetTransaction)

	base.GET("/blocks", t.GetLatestBlocks)

	base.GET("/network/nodes", t.GetNetworkNodes)

	base.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(basePath+"/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1)))

	base.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, basePath+"/swagger/index.html")
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *Server) Run() error {
	return s.router.Run(s.listenHost)
}
