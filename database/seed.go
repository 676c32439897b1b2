package database

import (
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/models"
)

func intptr(v int) *int { return &v }

// defaultMenu is the house catalog. The products service owns the real one;
// this seed keeps a fresh deployment usable before the first sync.
var defaultMenu = []models.MenuItem{
	{ID: "1", Name: "Llokallita", Price: 13, Description: "Hamburguesa económica", Category: models.CategoryBurger, CookingTime: intptr(8)},
	{ID: "2", Name: "Saqpalla", Price: 17, Description: "Hamburguesa clásica", Category: models.CategoryBurger, CookingTime: intptr(8)},
	{ID: "3", Name: "Runtu", Price: 20, Description: "Hamburguesa con huevo", Category: models.CategoryBurger, CookingTime: intptr(10)},
	{ID: "4", Name: "Miski", Price: 22, Description: "Hamburguesa con piña", Category: models.CategoryBurger, CookingTime: intptr(10)},
	{ID: "5", Name: "Soqta", Price: 30, Description: "Hamburguesa con chorizo", Category: models.CategoryBurger, CookingTime: intptr(12)},
	{ID: "6", Name: "Munay", Price: 30, Description: "Hamburguesa con tocino y cebolla crispy", Category: models.CategoryBurger, CookingTime: intptr(12)},
	{ID: "7", Name: "Sumaq", Price: 30, Description: "Hamburguesa premium", Category: models.CategoryBurger, CookingTime: intptr(12)},
	{ID: "s1", Name: "Salchipapa", Price: 20, Description: "Salchicha con papas fritas", Category: models.CategoryBurger, CookingTime: intptr(8)},
	{ID: "d1", Name: "Limonada con hierva buena", Price: 5, Description: "Refresco natural", Category: models.CategoryDrink},
	{ID: "d2", Name: "Mocochinchi", Price: 5, Description: "Bebida tradicional", Category: models.CategoryDrink},
	{ID: "d3", Name: "Gaseosas 350ml", Price: 3, Description: "Salvietti o Coca Cola", Category: models.CategoryDrink},
	{ID: "d4", Name: "Cerveza", Price: 20, Description: "Cerveza fría", Category: models.CategoryDrink},
	{ID: "e1", Name: "Tocino", Price: 7, Description: "Porción adicional de tocino", Category: models.CategoryExtra},
	{ID: "e2", Name: "Jamón", Price: 7, Description: "Porción adicional de jamón", Category: models.CategoryExtra},
	{ID: "e3", Name: "Chorizo", Price: 10, Description: "Porción adicional de chorizo", Category: models.CategoryExtra},
	{ID: "e4", Name: "Carne extra", Price: 10, Description: "Porción adicional de carne", Category: models.CategoryExtra},
	{ID: "s2", Name: "Porción de papas fritas", Price: 7, Description: "Papas fritas crujientes", Category: models.CategoryExtra},
}

// SeedMenu inserts the default catalog when the table is empty.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&defaultMenu).Error
}
