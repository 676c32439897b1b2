package services

import (
	"errors"
	"time"

	"github.com/waykaburger/station-app/lifecycle"
	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

const autoActor = "Sistema (Auto)"

// SalesScheduler opens and closes the cash day on a clock: the day opens when
// service starts in the afternoon and closes at the end of the night. Checks
// once a minute, mirroring the tablets' old client-side timer.
type SalesScheduler struct {
	Store    *store.Store
	OpenAt   string // "15:04" wall-clock
	CloseAt  string
	Interval time.Duration
	StopChan chan struct{}
}

func NewSalesScheduler(st *store.Store) *SalesScheduler {
	return &SalesScheduler{
		Store:    st,
		OpenAt:   "17:00",
		CloseAt:  "23:59",
		Interval: 1 * time.Minute,
		StopChan: make(chan struct{}),
	}
}

func (ss *SalesScheduler) Start() {
	go func() {
		ticker := time.NewTicker(ss.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ss.check(time.Now())
			case <-ss.StopChan:
				return
			}
		}
	}()
}

func (ss *SalesScheduler) Stop() {
	close(ss.StopChan)
}

func (ss *SalesScheduler) check(now time.Time) {
	var pe *lifecycle.PreconditionError
	clock := now.Format("15:04")

	if clock == ss.OpenAt {
		err := ss.Store.OpenSales(autoActor)
		switch {
		case err == nil:
			utils.InfoLogger.Printf("Cash day opened automatically at %s", clock)
		case errors.As(err, &pe):
			// already open, nothing to do
		default:
			utils.ErrorLogger.Printf("Error auto-opening sales: %v", err)
		}
	}

	if clock == ss.CloseAt {
		err := ss.Store.CloseSales(autoActor)
		switch {
		case err == nil:
			utils.InfoLogger.Printf("Cash day closed automatically at %s", clock)
		case errors.As(err, &pe):
			// already closed, nothing to do
		default:
			utils.ErrorLogger.Printf("Error auto-closing sales: %v", err)
		}
	}
}
