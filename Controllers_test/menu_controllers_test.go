package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/controllers"
	"github.com/waykaburger/station-app/database"
	"github.com/waykaburger/station-app/models"
	"github.com/waykaburger/station-app/utils"
)

func setupTestDBForMenus() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:menusctrl?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		panic(err)
	}
	if err := database.SeedMenu(db); err != nil {
		panic(err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/by-category", menuCtrl.GetMenusByCategory)
	return router
}

func TestGetAllMenus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenus()
	router := setupMenuRouter(db)

	w := postJSON(router, "GET", "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 17)
}

func TestGetMenusByCategory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenus()
	router := setupMenuRouter(db)

	w := postJSON(router, "GET", "/menus/by-category?category=drink", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 4)
	for _, raw := range data {
		item := raw.(map[string]interface{})
		assert.Equal(t, "drink", item["category"])
	}

	w = postJSON(router, "GET", "/menus/by-category?category=pizza", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
