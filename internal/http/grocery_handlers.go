package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kharcha-app/kharcha/internal/service"
)

func (s *Server) handleGetList(c *gin.Context) {
	items, err := s.ledger.GetList(c.Request.Context(), currentAccount(c).ID, c.Param("date"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleAddItem(c *gin.Context) {
	var draft service.ItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	item, err := s.ledger.AddItem(c.Request.Context(), currentAccount(c).ID, c.Param("date"), draft)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	var patch service.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	item, err := s.ledger.UpdateItem(
		c.Request.Context(), currentAccount(c).ID, c.Param("date"), c.Param("itemId"), patch)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	err := s.ledger.DeleteItem(
		c.Request.Context(), currentAccount(c).ID, c.Param("date"), c.Param("itemId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

type bulkSaveRequest struct {
	Items []service.ItemDraft `json:"items"`
}

func (s *Server) handleBulkSave(c *gin.Context) {
	var req bulkSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	items, err := s.ledger.BulkSave(c.Request.Context(), currentAccount(c).ID, c.Param("date"), req.Items)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleDuplicateLastWeek(c *gin.Context) {
	items, err := s.ledger.DuplicateLastWeek(c.Request.Context(), currentAccount(c).ID, c.Param("date"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleMonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		badRequest(c, "year must be a number")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		badRequest(c, "month must be a number")
		return
	}

	summary, err := s.ledger.MonthlySummary(c.Request.Context(), currentAccount(c).ID, year, month)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
