// Package lifecycle holds the order state machine: pure decision logic mapping
// (order state, station, action) to the new state plus the notifications each
// transition owes the other stations. It performs no I/O; the store persists
// whatever this package decides.
package lifecycle

import (
	"github.com/waykaburger/station-app/models"
)

// Event is a notification the store must append after a successful transition.
type Event struct {
	Type    string
	Target  string
	Message string
}

// PrepareDraft validates a drafted order, computes its money fields and initial
// state in place, and returns the creation notifications.
//
// initialPayment semantics follow the cashier flow: nil means paid in full up
// front, 0 means pay later, anything in between is a split payment. The order
// must already carry its OrderNumber so messages can reference it.
func PrepareDraft(o *models.Order, initialPayment *float64) ([]Event, error) {
	if len(o.Items) == 0 {
		return nil, validationf("el pedido no tiene items")
	}
	for i := range o.Items {
		line := &o.Items[i]
		if line.Quantity < 1 {
			return nil, validationf("cantidad invalida para %q: %d", line.Name, line.Quantity)
		}
		if line.Price < 0 {
			return nil, validationf("precio negativo para %q", line.Name)
		}
		if !models.ValidCategory(line.Category) {
			return nil, validationf("categoria desconocida: %q", line.Category)
		}
	}
	switch o.PaymentMethod {
	case models.PaymentCash, models.PaymentQR:
	default:
		return nil, validationf("metodo de pago desconocido: %q", o.PaymentMethod)
	}
	switch o.OrderType {
	case models.OrderTypeDineIn, models.OrderTypeTakeout:
	default:
		return nil, validationf("tipo de pedido desconocido: %q", o.OrderType)
	}

	o.Total = o.ItemsTotal()

	paid := o.Total
	if initialPayment != nil {
		paid = *initialPayment
	}
	if paid < 0 {
		return nil, validationf("pago inicial negativo")
	}
	if paid > o.Total {
		return nil, validationf("el pago inicial (%s) excede el total (%s)", FormatAmount(paid), FormatAmount(o.Total))
	}
	o.AmountPaid = paid
	o.AmountPending = o.Total - paid
	if paid > 0 {
		o.Payments = append(o.Payments, models.PaymentRecord{
			Method: o.PaymentMethod,
			Amount: paid,
		})
	}

	// Drinks/extras-only orders skip station work entirely: born ready, all
	// four flags pre-set. This fast path is load-bearing for the cashier flow.
	if !o.HasStationItems() {
		o.Status = models.StatusReadyForPickup
		o.KitchenStarted = true
		o.GrillStarted = true
		o.KitchenCompleted = true
		o.GrillCompleted = true
		return []Event{{
			Type:    models.NotifReadyForPickup,
			Target:  models.StationCashier,
			Message: msgInstantReady(o.OrderNumber),
		}}, nil
	}

	o.Status = models.StatusPending
	return []Event{
		{Type: models.NotifNewOrder, Target: models.StationKitchen, Message: msgNewOrder(o.OrderNumber, o.Total)},
		{Type: models.NotifNewOrder, Target: models.StationGrill, Message: msgNewOrder(o.OrderNumber, o.Total)},
	}, nil
}

// Start marks a station as having begun work on the order and notifies the
// other station. Starting twice is a precondition violation, not a silent
// no-op, so notifications never double-fire.
func Start(o *models.Order, station string) ([]Event, error) {
	switch station {
	case models.StationKitchen:
		if o.KitchenStarted {
			return nil, preconditionf("cocina ya inicio el pedido #%d", o.OrderNumber)
		}
		o.KitchenStarted = true
		o.Status = models.StatusKitchenStarted
		return []Event{{
			Type:    models.NotifKitchenStarted,
			Target:  models.StationGrill,
			Message: msgStationStarted(models.StationKitchen, o.OrderNumber),
		}}, nil
	case models.StationGrill:
		if o.GrillStarted {
			return nil, preconditionf("plancha ya inicio el pedido #%d", o.OrderNumber)
		}
		o.GrillStarted = true
		o.Status = models.StatusGrillStarted
		return []Event{{
			Type:    models.NotifGrillStarted,
			Target:  models.StationKitchen,
			Message: msgStationStarted(models.StationGrill, o.OrderNumber),
		}}, nil
	default:
		return nil, validationf("estacion desconocida: %q", station)
	}
}

// Finish marks a station's work as done.
//
// The two stations are deliberately asymmetric: grill may finish at any point
// after starting, but kitchen cannot finish until grill has finished (grill is
// the bottleneck station). Kitchen finishing therefore always leaves the order
// ready for pickup, while grill finishing first parks it at grill-completed.
func Finish(o *models.Order, station string) ([]Event, error) {
	switch station {
	case models.StationKitchen:
		if !o.KitchenStarted {
			return nil, preconditionf("cocina no ha iniciado el pedido #%d", o.OrderNumber)
		}
		if o.KitchenCompleted {
			return nil, preconditionf("cocina ya termino el pedido #%d", o.OrderNumber)
		}
		if !o.GrillCompleted {
			return nil, preconditionf("cocina no puede terminar el pedido #%d: plancha debe terminar primero", o.OrderNumber)
		}
		o.KitchenCompleted = true
		o.Status = models.StatusReadyForPickup
		return []Event{{
			Type:    models.NotifKitchenCompleted,
			Target:  models.StationGrill,
			Message: msgStationFinished(models.StationKitchen, o.OrderNumber),
		}}, nil
	case models.StationGrill:
		if !o.GrillStarted {
			return nil, preconditionf("plancha no ha iniciado el pedido #%d", o.OrderNumber)
		}
		if o.GrillCompleted {
			return nil, preconditionf("plancha ya termino el pedido #%d", o.OrderNumber)
		}
		o.GrillCompleted = true
		if o.KitchenCompleted {
			o.Status = models.StatusReadyForPickup
		} else {
			o.Status = models.StatusGrillCompleted
		}
		return []Event{{
			Type:    models.NotifGrillCompleted,
			Target:  models.StationKitchen,
			Message: msgStationFinished(models.StationGrill, o.OrderNumber),
		}}, nil
	default:
		return nil, validationf("estacion desconocida: %q", station)
	}
}

// Deliver closes the order at the counter. Requires both that the order is
// ready for pickup and that nothing is left to pay; an overpaid balance
// (negative pending after an item edit) does not block delivery.
func Deliver(o *models.Order) error {
	if o.Status != models.StatusReadyForPickup {
		return preconditionf("el pedido #%d no esta listo para entregar (estado %s)", o.OrderNumber, o.Status)
	}
	if o.AmountPending > 0 {
		return preconditionf("el pedido #%d tiene saldo pendiente de %s Bs.", o.OrderNumber, FormatAmount(o.AmountPending))
	}
	o.Status = models.StatusCompleted
	return nil
}

// EditItems replaces the line list of a pending order and recomputes the money
// fields. Lines at quantity 0 are dropped. Emptying the list is a cancellation
// signal: cancel=true and the order is left untouched for the store to delete.
// Pending may go negative if the order was overpaid; that is surfaced as a
// visible adjustment, not an error.
func EditItems(o *models.Order, items []models.OrderItem) (cancel bool, err error) {
	if o.Status != models.StatusPending {
		return false, preconditionf("el pedido #%d ya esta en preparacion, no se puede editar", o.OrderNumber)
	}
	kept := make([]models.OrderItem, 0, len(items))
	for i := range items {
		if items[i].Quantity == 0 {
			continue
		}
		if items[i].Quantity < 1 {
			return false, validationf("cantidad invalida para %q: %d", items[i].Name, items[i].Quantity)
		}
		if items[i].Price < 0 {
			return false, validationf("precio negativo para %q", items[i].Name)
		}
		if !models.ValidCategory(items[i].Category) {
			return false, validationf("categoria desconocida: %q", items[i].Category)
		}
		kept = append(kept, items[i])
	}
	if len(kept) == 0 {
		return true, nil
	}
	o.Items = kept
	o.Total = o.ItemsTotal()
	o.AmountPending = o.Total - o.AmountPaid
	return false, nil
}

// ApplyPayment appends to the payment ledger. Amounts beyond the pending
// balance are rejected outright; the cap is enforced here, not client-side.
func ApplyPayment(o *models.Order, method string, amount float64) error {
	switch method {
	case models.PaymentCash, models.PaymentQR:
	default:
		return validationf("metodo de pago desconocido: %q", method)
	}
	if amount <= 0 {
		return validationf("el monto debe ser mayor a cero")
	}
	if o.AmountPending <= 0 {
		return validationf("el pedido #%d no tiene saldo pendiente", o.OrderNumber)
	}
	if amount > o.AmountPending {
		return validationf("el monto (%s) excede el saldo pendiente (%s)", FormatAmount(amount), FormatAmount(o.AmountPending))
	}
	o.Payments = append(o.Payments, models.PaymentRecord{
		OrderID: o.ID,
		Method:  method,
		Amount:  amount,
	})
	o.AmountPaid += amount
	o.AmountPending -= amount
	return nil
}

// Cancel checks that an order can still be cancelled outright.
func Cancel(o *models.Order) error {
	if o.Status != models.StatusPending {
		return preconditionf("el pedido #%d ya esta en preparacion, no se puede cancelar", o.OrderNumber)
	}
	return nil
}
