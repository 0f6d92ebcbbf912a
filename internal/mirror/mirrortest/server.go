// Package mirrortest runs an in-memory mirror node for tests.
package mirrortest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
)

const basePath = "/api/v1"

const defaultLimit = 25

var errNoTo = errors.New("missing 'to' field")

type Server struct {
	*httptest.Server

	Accounts  map[string]*core.Account
	Contracts map[string]*core.Contract
	Tokens    map[string]*core.Token
	Metadata  map[string]*core.TokenMetadata // by url path, served under /ipfs/

	Transactions []*core.Transaction // any order
	Blocks       []*core.Block
	Messages     map[string][]*core.TopicMessage // by topic id
	Nodes        []*core.NetworkNode

	// NextAlways makes every paged response carry a next link.
	NextAlways bool

	// Fail answers every request with the given status when not zero.
	Fail int

	requests []string
	mx       sync.Mutex
}

func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		Accounts:  map[string]*core.Account{},
		Contracts: map[string]*core.Contract{},
		Tokens:    map[string]*core.Token{},
		Metadata:  map[string]*core.TokenMetadata{},
		Messages:  map[string][]*core.TopicMessage{},
	}

	r := gin.New()
	r.Use(s.record)

	base := r.Group(basePath)
	base.GET("/accounts/:id", s.getAccount)
	base.GET("/contracts/:id", s.getContract)
	base.POST("/contracts/call", s.contractCall)
	base.GET("/tokens/:id", s.getToken)
	base.GET("/transactions", s.getTransactions)
	base.GET("/transactions/:id", s.getTransaction)
	base.GET("/blocks", s.getBlocks)
	base.GET("/topics/:id/messages", s.getMessages)
	base.GET("/network/nodes", s.getNodes)

	r.GET("/ipfs/*path", s.getMetadata)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) record(ctx *gin.Context) {
	s.mx.Lock()
	s.requests = append(s.requests, ctx.Request.URL.RequestURI())
	fail := s.Fail
	s.mx.Unlock()

	if fail != 0 {
		ctx.AbortWithStatusJSON(fail, errorBody("failure"))
		return
	}
	ctx.Next()
}

// Requests returns request uris served so far.
func (s *Server) Requests() []string {
	s.mx.Lock()
	defer s.mx.Unlock()

	return append([]string(nil), s.requests...)
}

// RequestCount counts requests whose path starts with prefix.
func (s *Server) RequestCount(prefix string) int {
	var n int
	for _, r := range s.Requests() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func (s *Server) SetFail(status int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.Fail = status
}

func (s *Server) AddTransactions(tx ...*core.Transaction) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.Transactions = append(s.Transactions, tx...)
}

func (s *Server) AddBlocks(b ...*core.Block) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.Blocks = append(s.Blocks, b...)
}

func (s *Server) AddMessages(topic string, m ...*core.TopicMessage) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.Messages[topic] = append(s.Messages[topic], m...)
}

func errorBody(msg string) gin.H {
	return gin.H{"_status": gin.H{"messages": []gin.H{{"message": msg}}}}
}

func notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, errorBody("Not found"))
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorBody(err.Error()))
}

func getByID[T any](s *Server, ctx *gin.Context, m map[string]*T) {
	s.mx.Lock()
	v, ok := m[ctx.Param("id")]
	s.mx.Unlock()

	if !ok {
		notFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, v)
}

func (s *Server) getAccount(ctx *gin.Context)  { getByID(s, ctx, s.Accounts) }
func (s *Server) getContract(ctx *gin.Context) { getByID(s, ctx, s.Contracts) }
func (s *Server) getToken(ctx *gin.Context)    { getByID(s, ctx, s.Tokens) }

func (s *Server) getMetadata(ctx *gin.Context) {
	s.mx.Lock()
	v, ok := s.Metadata[strings.TrimPrefix(ctx.Param("path"), "/")]
	s.mx.Unlock()

	if !ok {
		notFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, v)
}

func (s *Server) contractCall(ctx *gin.Context) {
	var req core.ContractCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	if req.To == "" {
		badRequest(ctx, errNoTo)
		return
	}
	ctx.JSON(http.StatusOK, &core.ContractCallResult{Result: "0x" + strings.TrimPrefix(req.Data, "0x")})
}

func (s *Server) getTransaction(ctx *gin.Context) {
	s.mx.Lock()
	var ret []*core.Transaction
	for _, tx := range s.Transactions {
		if tx.TransactionID == ctx.Param("id") {
			ret = append(ret, tx)
		}
	}
	s.mx.Unlock()

	if len(ret) == 0 {
		notFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, &core.TransactionByIDResponse{Transactions: ret})
}

func (s *Server) getTransactions(ctx *gin.Context) {
	s.mx.Lock()
	rows := make([]*core.Transaction, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		if acc := ctx.Query("account.id"); acc != "" && !involves(tx, acc) {
			continue
		}
		if typ := ctx.Query("transactiontype"); typ != "" && tx.Name != typ {
			continue
		}
		rows = append(rows, tx)
	}
	s.mx.Unlock()

	ret, next, err := page(s, ctx, rows, "timestamp", func(tx *core.Transaction) string { return tx.ConsensusTimestamp }, compareTimestamps)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &core.TransactionsResponse{Transactions: ret, Links: core.Links{Next: next}})
}

func involves(tx *core.Transaction, account string) bool {
	for _, t := range tx.Transfers {
		if t.Account == account {
			return true
		}
	}
	return tx.EntityID != nil && *tx.EntityID == account
}

func (s *Server) getBlocks(ctx *gin.Context) {
	s.mx.Lock()
	rows := append([]*core.Block(nil), s.Blocks...)
	s.mx.Unlock()

	ret, next, err := page(s, ctx, rows, "block.number", func(b *core.Block) string { return strconv.FormatInt(b.Number, 10) }, compareInts)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &core.BlocksResponse{Blocks: ret, Links: core.Links{Next: next}})
}

func (s *Server) getMessages(ctx *gin.Context) {
	s.mx.Lock()
	rows, ok := s.Messages[ctx.Param("id")]
	rows = append([]*core.TopicMessage(nil), rows...)
	s.mx.Unlock()

	if !ok {
		notFound(ctx)
		return
	}

	ret, next, err := page(s, ctx, rows, "sequencenumber", func(m *core.TopicMessage) string { return strconv.FormatInt(m.SequenceNumber, 10) }, compareInts)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &core.TopicMessagesResponse{Messages: ret, Links: core.Links{Next: next}})
}

func (s *Server) getNodes(ctx *gin.Context) {
	s.mx.Lock()
	rows := append([]*core.NetworkNode(nil), s.Nodes...)
	s.mx.Unlock()

	ret, next, err := page(s, ctx, rows, "node.id", func(n *core.NetworkNode) string { return strconv.FormatInt(n.NodeID, 10) }, compareInts)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &core.NetworkNodesResponse{Nodes: ret, Links: core.Links{Next: next}})
}

// page applies the range query parameter, order and limit to rows
// and builds the next link the way the mirror node does.
func page[T any](s *Server, ctx *gin.Context, rows []T, param string, key func(T) string, cmp func(a, b string) int) ([]T, *string, error) {
	order := filter.DESC
	if param == "node.id" {
		order = filter.ASC
	}
	if o := ctx.Query("order"); o != "" {
		var err error
		if order, err = filter.ParseOrder(o); err != nil {
			return nil, nil, err
		}
	}

	limit := defaultLimit
	if l := ctx.Query("limit"); l != "" {
		var err error
		if limit, err = strconv.Atoi(l); err != nil {
			return nil, nil, err
		}
	}

	if p := ctx.Query(param); p != "" {
		op, value, err := filter.SplitKeyParam(p)
		if err != nil {
			return nil, nil, err
		}
		filtered := rows[:0:0]
		for _, r := range rows {
			if match(op, cmp(key(r), value)) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(key(rows[i]), key(rows[j]))
		if order == filter.ASC {
			return c < 0
		}
		return c > 0
	})

	s.mx.Lock()
	nextAlways := s.NextAlways
	s.mx.Unlock()

	if len(rows) <= limit && !nextAlways {
		return rows, nil, nil
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	if len(rows) == 0 {
		return rows, nil, nil
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", string(order))
	q.Set(param, filter.KeyParam(filter.GT, order, key(rows[len(rows)-1])))
	for k, v := range ctx.Request.URL.Query() {
		if _, ok := q[k]; !ok {
			q[k] = v
		}
	}
	next := ctx.Request.URL.Path + "?" + q.Encode()

	return rows, &next, nil
}

func match(op filter.Operator, c int) bool {
	switch op {
	case filter.GT:
		return c > 0
	case filter.GTE:
		return c >= 0
	case filter.LT:
		return c < 0
	case filter.LTE:
		return c <= 0
	default:
		return c == 0
	}
}

func compareInts(a, b string) int {
	x, _ := strconv.ParseInt(a, 10, 64)
	y, _ := strconv.ParseInt(b, 10, 64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func compareTimestamps(a, b string) int {
	x, _ := core.ParseTimestamp(a)
	y, _ := core.ParseTimestamp(b)
	return x.Compare(y)
}
