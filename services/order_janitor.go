package services

import (
	"time"

	"github.com/waykaburger/station-app/hub"
	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

// OrderJanitor removes delivered orders a short while after completion, the
// way the counter screen expects them to disappear. It is a stoppable ticker
// so deployments (and tests) can shorten or skip the delay.
type OrderJanitor struct {
	Store    *store.Store
	Interval time.Duration
	Delay    time.Duration
	StopChan chan struct{}
}

func NewOrderJanitor(st *store.Store) *OrderJanitor {
	return &OrderJanitor{
		Store:    st,
		Interval: 1 * time.Second,
		Delay:    2 * time.Second,
		StopChan: make(chan struct{}),
	}
}

func (j *OrderJanitor) Start() {
	go func() {
		ticker := time.NewTicker(j.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.StopChan:
				return
			}
		}
	}()
}

func (j *OrderJanitor) Stop() {
	close(j.StopChan)
}

func (j *OrderJanitor) sweep() {
	ids, err := j.Store.SweepCompleted(j.Delay)
	if err != nil {
		utils.ErrorLogger.Printf("Error sweeping completed orders: %v", err)
		return
	}
	for _, id := range ids {
		hub.BroadcastOrderDeleted(id)
	}
	if len(ids) > 0 {
		utils.InfoLogger.Printf("Cleaned up %d completed orders", len(ids))
	}
}
