package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/models"
	"github.com/waykaburger/station-app/utils"
)

// MenuController serves the catalog the cashier builds snapshots from. The
// catalog itself is owned by the external products service; this is a
// read-only mirror.
type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> full catalog
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category, id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// GetMenusByCategory -> ?category=burger|side|drink|extra
func (mc *MenuController) GetMenusByCategory(c *gin.Context) {
	category := c.Query("category")
	if !models.ValidCategory(category) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown category %q", category))
		return
	}

	var items []models.MenuItem
	if err := mc.DB.Where("category = ?", category).Order("id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}
