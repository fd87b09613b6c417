package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharcha-app/kharcha/internal/calculator"
	"github.com/kharcha-app/kharcha/internal/models"
)

type calculateSplitRequest struct {
	TotalAmount   float64   `json:"totalAmount"`
	PersonCount   int       `json:"personCount"`
	TipPercentage float64   `json:"tipPercentage"`
	TaxPercentage float64   `json:"taxPercentage"`
	CustomAmounts []float64 `json:"customAmounts"`
}

func (s *Server) handleCalculateSplit(c *gin.Context) {
	var req calculateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := calculator.Calculate(calculator.SplitInput{
		TotalAmount:   req.TotalAmount,
		PersonCount:   req.PersonCount,
		TipPercentage: req.TipPercentage,
		TaxPercentage: req.TaxPercentage,
		CustomAmounts: req.CustomAmounts,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculator.ErrInvalidTotal),
			errors.Is(err, calculator.ErrInvalidPersonCount),
			errors.Is(err, calculator.ErrInvalidPercentage):
			badRequest(c, err.Error())
		default:
			s.respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

type saveSplitRequest struct {
	TotalAmount     float64 `json:"totalAmount"`
	PersonCount     int     `json:"personCount"`
	AmountPerPerson float64 `json:"amountPerPerson"`
	Note            string  `json:"note"`
}

func (s *Server) handleSaveSplit(c *gin.Context) {
	var req saveSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.TotalAmount <= 0 {
		badRequest(c, calculator.ErrInvalidTotal.Error())
		return
	}
	if req.PersonCount < 1 {
		badRequest(c, calculator.ErrInvalidPersonCount.Error())
		return
	}

	record := &models.SplitRecord{
		AccountID:       currentAccount(c).ID,
		TotalAmount:     req.TotalAmount,
		PersonCount:     req.PersonCount,
		AmountPerPerson: req.AmountPerPerson,
		Note:            req.Note,
		CreatedAt:       time.Now().Unix(),
	}
	if err := s.store.CreateSplitRecord(c.Request.Context(), record); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": record})
}

func (s *Server) handleSplitHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			badRequest(c, "limit must be a number between 1 and 100")
			return
		}
		limit = n
	}

	records, err := s.store.ListSplitRecords(c.Request.Context(), currentAccount(c).ID, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if records == nil {
		records = []models.SplitRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
