package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/core"
)

// @title      		ledgerscope explorer
// @version         0.0.1
// @description     Cached mirror node queries for the explorer.

// @license.name  	Apache 2.0
// @license.url   	http://www.apache.org/licenses/LICENSE-2.0.html

// @host      		localhost
// @BasePath  		/api/v1
// @schemes 		http

var basePath = "/api/v1"

var _ ExplorerController = (*Controller)(nil)

type Controller struct {
	svc app.ExplorerService
}

func NewController(svc app.ExplorerService) *Controller {
	return &Controller{svc: svc}
}

func paramErr(ctx *gin.Context, param string, err error) {
	ctx.IndentedJSON(http.StatusBadRequest, gin.H{"param": param, "error": err.Error()})
}

func internalErr(ctx *gin.Context, err error) {
	log.Error().Str("path", ctx.FullPath()).Err(err).Msg("internal server error")
	ctx.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// serviceErr maps lookup failures: mirror node 404 stays 404, an unavailable mirror node gives 503.
func serviceErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		ctx.IndentedJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidArg):
		paramErr(ctx, "request", err)
	case errors.Is(err, core.ErrNotAvailable):
		ctx.IndentedJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		internalErr(ctx, err)
	}
}

func reply[T any](ctx *gin.Context, ret T, err error) {
	if err != nil {
		serviceErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAccount godoc
//	@Summary		account info
//	@Description	Returns account by id or evm address
//	@Tags			account
//	@Produce		json
//  @Param   		id     		path   string 	true   "account id"
//	@Success		200		{object}		core.Account
//	@Router			/accounts/{id} [get]
func (c *Controller) GetAccount(ctx *gin.Context) {
	ret, err := c.svc.GetAccount(ctx.Request.Context(), ctx.Param("id"))
	reply(ctx, ret, err)
}

// GetContract godoc
//	@Summary		contract info
//	@Tags			contract
//	@Produce		json
//  @Param   		id     		path   string 	true   "contract id"
//	@Success		200		{object}		core.Contract
//	@Router			/contracts/{id} [get]
func (c *Controller) GetContract(ctx *gin.Context) {
	ret, err := c.svc.GetContract(ctx.Request.Context(), ctx.Param("id"))
	reply(ctx, ret, err)
}

// CallContract godoc
//	@Summary		contract call
//	@Description	Simulates a contract call
//	@Tags			contract
//	@Accept			json
//	@Produce		json
//  @Param   		request     body   core.ContractCallRequest 	true   "call data"
//	@Success		200		{object}		core.ContractCallResult
//	@Router			/contracts/call [post]
func (c *Controller) CallContract(ctx *gin.Context) {
	var req core.ContractCallRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		paramErr(ctx, "contract_call", err)
		return
	}

	ret, err := c.svc.CallContract(ctx.Request.Context(), &req)
	reply(ctx, ret, err)
}

// GetToken godoc
//	@Summary		token info
//	@Tags			token
//	@Produce		json
//  @Param   		id     		path   string 	true   "token id"
//	@Success		200		{object}		core.Token
//	@Router			/tokens/{id} [get]
func (c *Controller) GetToken(ctx *gin.Context) {
	ret, err := c.svc.GetToken(ctx.Request.Context(), ctx.Param("id"))
	reply(ctx, ret, err)
}

// GetTokenMetadata godoc
//	@Summary		token metadata
//	@Description	Returns the metadata document referenced by the token
//	@Tags			token
//	@Produce		json
//  @Param   		id     		path   string 	true   "token id"
//	@Success		200		{object}		core.TokenMetadata
//	@Router			/tokens/{id}/metadata [get]
func (c *Controller) GetTokenMetadata(ctx *gin.Context) {
	ret, err := c.svc.GetTokenMetadata(ctx.Request.Context(), ctx.Param("id"))
	reply(ctx, ret, err)
}

// GetTransaction godoc
//	@Summary		transaction info
//	@Description	Returns every transaction sharing the transaction id
//	@Tags			transaction
//	@Produce		json
//  @Param   		id     		path   string 	true   "transaction id"
//	@Success		200		{array}		core.Transaction
//	@Router			/transactions/{id} [get]
func (c *Controller) GetTransaction(ctx *gin.Context) {
	ret, err := c.svc.GetTransaction(ctx.Request.Context(), ctx.Param("id"))
	reply(ctx, ret, err)
}

// GetLatestTransactions godoc
//	@Summary		latest transactions
//	@Tags			transaction
//	@Produce		json
//	@Success		200		{array}		core.Transaction
//	@Router			/transactions [get]
func (c *Controller) GetLatestTransactions(ctx *gin.Context) {
	reply(ctx, c.svc.LatestTransactions(), nil)
}

// GetLatestBlocks godoc
//	@Summary		latest blocks
//	@Tags			block
//	@Produce		json
//	@Success		200		{array}		core.Block
//	@Router			/blocks [get]
func (c *Controller) GetLatestBlocks(ctx *gin.Context) {
	reply(ctx, c.svc.LatestBlocks(), nil)
}

// GetNetworkNodes godoc
//	@Summary		network nodes
//	@Tags			network
//	@Produce		json
//	@Success		200		{array}		core.NetworkNode
//	@Router			/network/nodes [get]
func (c *Controller) GetNetworkNodes(ctx *gin.Context) {
	ret, err := c.svc.GetNetworkNodes(ctx.Request.Context())
	reply(ctx, ret, err)
}
