package lifecycle

import (
	"fmt"
	"strconv"

	"github.com/waykaburger/station-app/models"
)

// Station display names used in notification text.
var stationLabels = map[string]string{
	models.StationKitchen: "Cocina",
	models.StationGrill:   "Plancha",
	models.StationCashier: "Caja",
}

// FormatAmount renders a money amount for notification text without trailing
// zeros (13 stays "13", 13.5 stays "13.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func msgNewOrder(orderNumber int, total float64) string {
	return fmt.Sprintf("Nuevo pedido #%d - %s Bs.", orderNumber, FormatAmount(total))
}

func msgInstantReady(orderNumber int) string {
	return fmt.Sprintf("¡Pedido #%d LISTO PARA RECOGER! (Solo bebidas/extras)", orderNumber)
}

func msgStationStarted(station string, orderNumber int) string {
	return fmt.Sprintf("%s inició pedido #%d", stationLabels[station], orderNumber)
}

func msgStationFinished(station string, orderNumber int) string {
	return fmt.Sprintf("%s terminó pedido #%d", stationLabels[station], orderNumber)
}
