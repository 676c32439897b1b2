package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

type SalesController struct {
	Store *store.Store
}

func NewSalesController(st *store.Store) *SalesController {
	return &SalesController{Store: st}
}

// GetSales -> ?date=YYYY-MM-DD, today when absent; first read of a day creates
// a zeroed record
func (sc *SalesController) GetSales(c *gin.Context) {
	sales, err := sc.Store.GetSales(c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily sales", sales)
}

// CloseSales -> end the cash day; a second close fails and leaves the flag set
func (sc *SalesController) CloseSales(c *gin.Context) {
	type reqBody struct {
		ClosedBy string `json:"closed_by"`
	}
	var body reqBody
	_ = c.ShouldBindJSON(&body)
	if body.ClosedBy == "" {
		if staff, ok := c.Get("staff"); ok {
			body.ClosedBy = staff.(string)
		}
	}

	if err := sc.Store.CloseSales(body.ClosedBy); err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.InfoLogger.Printf("Cash day closed by %s", body.ClosedBy)
	utils.RespondJSON(c, http.StatusOK, "Sales closed", gin.H{"closed_by": body.ClosedBy})
}

// OpenSales -> start a fresh day; only valid when no day is open
func (sc *SalesController) OpenSales(c *gin.Context) {
	type reqBody struct {
		OpenedBy string `json:"opened_by"`
	}
	var body reqBody
	_ = c.ShouldBindJSON(&body)
	if body.OpenedBy == "" {
		if staff, ok := c.Get("staff"); ok {
			body.OpenedBy = staff.(string)
		}
	}

	if err := sc.Store.OpenSales(body.OpenedBy); err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.InfoLogger.Printf("Cash day opened by %s", body.OpenedBy)
	utils.RespondJSON(c, http.StatusOK, "Sales opened", gin.H{"opened_by": body.OpenedBy})
}

// ResetSales -> replace today's record with a zeroed one, open or closed
func (sc *SalesController) ResetSales(c *gin.Context) {
	if err := sc.Store.ResetSales(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales reset", nil)
}
