// Package stockdata serves the stock-data wire contract from memory so the
// fetch CLI can run against a local endpoint.
package stockdata

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockquote/internal/quote"
)

// quoteResponse is the wire shape; price goes out as a JSON number.
type quoteResponse struct {
	Symbol   string      `json:"symbol"`
	Price    json.Number `json:"price"`
	Analysis string      `json:"analysis"`
}

func toResponse(q quote.Quote) quoteResponse {
	return quoteResponse{Symbol: q.Symbol, Price: json.Number(q.Price.String()), Analysis: q.Analysis}
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// NewRouter wires the stock-data routes onto a fresh gin engine.
func NewRouter(h *Handler, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.GET("/healthz", Health)
	r.GET("/stock-data", h.List)
	r.GET("/stock-data/:symbol", h.Get)
	r.PUT("/stock-data/:symbol", h.Put)
	r.DELETE("/stock-data/:symbol", h.Delete)
	return r
}

func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) List(c *gin.Context) {
	qs := h.store.List()
	out := make([]quoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, toResponse(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	q, ok := h.store.Get(c.Param("symbol"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, toResponse(q))
}

// Put upserts the quote in the body under the path symbol.
func (h *Handler) Put(c *gin.Context) {
	var q quote.Quote
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	q.Symbol = c.Param("symbol")
	h.store.Put(q)
	c.JSON(http.StatusOK, toResponse(q))
}

func (h *Handler) Delete(c *gin.Context) {
	if !h.store.Delete(c.Param("symbol")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
