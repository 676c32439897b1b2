package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykaburger/station-app/models"
)

func burgerLine(qty int, price float64) models.OrderItem {
	return models.OrderItem{ItemID: "1", Name: "Llokallita", Price: price, Category: models.CategoryBurger, Quantity: qty}
}

func drinkLine(qty int, price float64) models.OrderItem {
	return models.OrderItem{ItemID: "d1", Name: "Limonada", Price: price, Category: models.CategoryDrink, Quantity: qty}
}

func draftOrder(items ...models.OrderItem) *models.Order {
	return &models.Order{
		OrderNumber:   7,
		Items:         items,
		PaymentMethod: models.PaymentCash,
		OrderType:     models.OrderTypeDineIn,
	}
}

func payLater() *float64 {
	zero := 0.0
	return &zero
}

func TestPrepareDraftPendingOrder(t *testing.T) {
	// Two burger lines plus a drink, pay later
	o := draftOrder(burgerLine(2, 13), burgerLine(1, 13), drinkLine(1, 5))

	events, err := PrepareDraft(o, payLater())
	require.NoError(t, err)

	assert.Equal(t, 44.0, o.Total)
	assert.Equal(t, 0.0, o.AmountPaid)
	assert.Equal(t, 44.0, o.AmountPending)
	assert.Equal(t, models.StatusPending, o.Status)
	assert.False(t, o.KitchenStarted)
	assert.False(t, o.GrillStarted)
	assert.False(t, o.KitchenCompleted)
	assert.False(t, o.GrillCompleted)
	assert.Empty(t, o.Payments)

	// new-order fires to both prep stations
	require.Len(t, events, 2)
	assert.Equal(t, models.NotifNewOrder, events[0].Type)
	assert.Equal(t, models.StationKitchen, events[0].Target)
	assert.Equal(t, models.NotifNewOrder, events[1].Type)
	assert.Equal(t, models.StationGrill, events[1].Target)
}

func TestPrepareDraftDrinksOnlyIsInstantlyReady(t *testing.T) {
	o := draftOrder(drinkLine(2, 5))

	events, err := PrepareDraft(o, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusReadyForPickup, o.Status)
	assert.True(t, o.KitchenStarted)
	assert.True(t, o.GrillStarted)
	assert.True(t, o.KitchenCompleted)
	assert.True(t, o.GrillCompleted)

	// exactly one cashier notification, nothing for the prep stations
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifReadyForPickup, events[0].Type)
	assert.Equal(t, models.StationCashier, events[0].Target)
}

func TestPrepareDraftPaidInFull(t *testing.T) {
	// nil initial payment means paid in full up front
	o := draftOrder(burgerLine(1, 20))

	_, err := PrepareDraft(o, nil)
	require.NoError(t, err)

	assert.Equal(t, 20.0, o.AmountPaid)
	assert.Equal(t, 0.0, o.AmountPending)
	require.Len(t, o.Payments, 1)
	assert.Equal(t, models.PaymentCash, o.Payments[0].Method)
	assert.Equal(t, 20.0, o.Payments[0].Amount)
}

func TestPrepareDraftSplitInitialPayment(t *testing.T) {
	partial := 10.0
	o := draftOrder(burgerLine(1, 30))

	_, err := PrepareDraft(o, &partial)
	require.NoError(t, err)

	assert.Equal(t, 10.0, o.AmountPaid)
	assert.Equal(t, 20.0, o.AmountPending)
	assert.Equal(t, o.Total, o.AmountPaid+o.AmountPending)
}

func TestPrepareDraftValidation(t *testing.T) {
	var ve *ValidationError

	_, err := PrepareDraft(draftOrder(), nil)
	assert.ErrorAs(t, err, &ve, "empty item list")

	_, err = PrepareDraft(draftOrder(burgerLine(0, 13)), nil)
	assert.ErrorAs(t, err, &ve, "zero quantity")

	o := draftOrder(burgerLine(1, 13))
	o.PaymentMethod = "cheque"
	_, err = PrepareDraft(o, nil)
	assert.ErrorAs(t, err, &ve, "unknown payment method")

	tooMuch := 99.0
	_, err = PrepareDraft(draftOrder(burgerLine(1, 13)), &tooMuch)
	assert.ErrorAs(t, err, &ve, "initial payment above total")
}

func prepared(t *testing.T) *models.Order {
	t.Helper()
	o := draftOrder(burgerLine(1, 20))
	_, err := PrepareDraft(o, payLater())
	require.NoError(t, err)
	return o
}

func TestStartNotifiesTheOtherStation(t *testing.T) {
	o := prepared(t)

	events, err := Start(o, models.StationKitchen)
	require.NoError(t, err)
	assert.True(t, o.KitchenStarted)
	assert.Equal(t, models.StatusKitchenStarted, o.Status)
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifKitchenStarted, events[0].Type)
	assert.Equal(t, models.StationGrill, events[0].Target)

	events, err = Start(o, models.StationGrill)
	require.NoError(t, err)
	assert.True(t, o.GrillStarted)
	assert.Equal(t, models.StatusGrillStarted, o.Status)
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifGrillStarted, events[0].Type)
	assert.Equal(t, models.StationKitchen, events[0].Target)
}

func TestStartTwiceIsRejected(t *testing.T) {
	o := prepared(t)

	_, err := Start(o, models.StationKitchen)
	require.NoError(t, err)

	var pe *PreconditionError
	_, err = Start(o, models.StationKitchen)
	assert.ErrorAs(t, err, &pe)
}

func TestKitchenCannotFinishBeforeGrill(t *testing.T) {
	o := prepared(t)
	_, err := Start(o, models.StationKitchen)
	require.NoError(t, err)
	_, err = Start(o, models.StationGrill)
	require.NoError(t, err)

	var pe *PreconditionError
	_, err = Finish(o, models.StationKitchen)
	require.ErrorAs(t, err, &pe)

	// rejected finish must not leak state
	assert.False(t, o.KitchenCompleted)
	assert.Equal(t, models.StatusGrillStarted, o.Status)
}

func TestGrillFinishesFirstThenKitchen(t *testing.T) {
	o := prepared(t)
	_, err := Start(o, models.StationKitchen)
	require.NoError(t, err)
	_, err = Start(o, models.StationGrill)
	require.NoError(t, err)

	// grill done, kitchen still working: parked at grill-completed
	events, err := Finish(o, models.StationGrill)
	require.NoError(t, err)
	assert.True(t, o.GrillCompleted)
	assert.Equal(t, models.StatusGrillCompleted, o.Status)
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifGrillCompleted, events[0].Type)
	assert.Equal(t, models.StationKitchen, events[0].Target)

	// kitchen done after grill: ready for pickup
	events, err = Finish(o, models.StationKitchen)
	require.NoError(t, err)
	assert.True(t, o.KitchenCompleted)
	assert.Equal(t, models.StatusReadyForPickup, o.Status)
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifKitchenCompleted, events[0].Type)
	assert.Equal(t, models.StationGrill, events[0].Target)
}

func TestGrillFinishingLastMakesOrderReady(t *testing.T) {
	// kitchen cannot be completed before grill, so the only way kitchenCompleted
	// precedes grillCompleted is the drinks-only fast path; simulate the flags
	// directly to cover the branch.
	o := prepared(t)
	_, err := Start(o, models.StationGrill)
	require.NoError(t, err)
	o.KitchenStarted = true
	o.KitchenCompleted = true

	_, err = Finish(o, models.StationGrill)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReadyForPickup, o.Status)
}

func TestFinishRequiresStart(t *testing.T) {
	o := prepared(t)

	var pe *PreconditionError
	_, err := Finish(o, models.StationGrill)
	assert.ErrorAs(t, err, &pe)
}

func TestDeliverRequiresReadyAndSettled(t *testing.T) {
	o := prepared(t)

	var pe *PreconditionError
	err := Deliver(o)
	assert.ErrorAs(t, err, &pe, "not ready yet")

	o.Status = models.StatusReadyForPickup
	err = Deliver(o)
	assert.ErrorAs(t, err, &pe, "pending balance blocks delivery")
	assert.Equal(t, models.StatusReadyForPickup, o.Status)

	require.NoError(t, ApplyPayment(o, models.PaymentCash, 20))
	require.NoError(t, Deliver(o))
	assert.Equal(t, models.StatusCompleted, o.Status)
}

func TestApplyPaymentSplit(t *testing.T) {
	o := prepared(t)

	require.NoError(t, ApplyPayment(o, models.PaymentCash, 10))
	require.NoError(t, ApplyPayment(o, models.PaymentQR, 5))

	assert.Equal(t, 15.0, o.AmountPaid)
	assert.Equal(t, 5.0, o.AmountPending)
	assert.Equal(t, o.Total, o.AmountPaid+o.AmountPending)
	require.Len(t, o.Payments, 2)
	assert.Equal(t, models.PaymentCash, o.Payments[0].Method)
	assert.Equal(t, models.PaymentQR, o.Payments[1].Method)
}

func TestApplyPaymentValidation(t *testing.T) {
	o := prepared(t)
	var ve *ValidationError

	assert.ErrorAs(t, ApplyPayment(o, models.PaymentCash, 0), &ve, "zero amount")
	assert.ErrorAs(t, ApplyPayment(o, models.PaymentCash, -3), &ve, "negative amount")
	assert.ErrorAs(t, ApplyPayment(o, "cheque", 5), &ve, "unknown method")
	assert.ErrorAs(t, ApplyPayment(o, models.PaymentCash, 21), &ve, "over the pending balance")

	require.NoError(t, ApplyPayment(o, models.PaymentCash, 20))
	assert.ErrorAs(t, ApplyPayment(o, models.PaymentCash, 1), &ve, "nothing pending")
}

func TestEditItemsRecomputesMoney(t *testing.T) {
	o := prepared(t)
	require.NoError(t, ApplyPayment(o, models.PaymentCash, 20))

	// shrink the ticket below what was already paid
	_, err := EditItems(o, []models.OrderItem{burgerLine(1, 13)})
	require.NoError(t, err)

	assert.Equal(t, 13.0, o.Total)
	assert.Equal(t, 20.0, o.AmountPaid)
	assert.Equal(t, -7.0, o.AmountPending, "overpayment surfaces as negative pending")
}

func TestEditItemsDropsZeroQuantityLines(t *testing.T) {
	o := prepared(t)

	cancel, err := EditItems(o, []models.OrderItem{burgerLine(0, 13), drinkLine(1, 5)})
	require.NoError(t, err)
	assert.False(t, cancel)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "d1", o.Items[0].ItemID)
}

func TestEditItemsToEmptyIsCancellation(t *testing.T) {
	o := prepared(t)

	cancel, err := EditItems(o, nil)
	require.NoError(t, err)
	assert.True(t, cancel)

	cancel, err = EditItems(o, []models.OrderItem{burgerLine(0, 13)})
	require.NoError(t, err)
	assert.True(t, cancel, "all lines at quantity zero is also a cancellation")
}

func TestEditItemsOnlyWhilePending(t *testing.T) {
	o := prepared(t)
	_, err := Start(o, models.StationKitchen)
	require.NoError(t, err)

	var pe *PreconditionError
	_, err = EditItems(o, []models.OrderItem{burgerLine(1, 13)})
	assert.ErrorAs(t, err, &pe)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	o := prepared(t)
	require.NoError(t, Cancel(o))

	_, err := Start(o, models.StationGrill)
	require.NoError(t, err)

	var pe *PreconditionError
	assert.ErrorAs(t, Cancel(o), &pe)
}
