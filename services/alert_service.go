package services

import (
	"sync"
	"time"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/utils"
)

// AlertNotifier watches the stock ledger for ingredients at or below their
// minimum and emails an alert when enough of them pile up. It sends at most
// one alert per business calendar day; the dedup date is component state
// injected at construction, not persisted, so a restart reopens the window
// for that day.
type AlertNotifier struct {
	ledger    *StockLedger
	mailer    Mailer
	threshold int
	loc       *time.Location

	mu            sync.Mutex
	lastAlertDate string

	checks   chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewAlertNotifier(ledger *StockLedger, mailer Mailer, threshold int, loc *time.Location) *AlertNotifier {
	return &AlertNotifier{
		ledger:    ledger,
		mailer:    mailer,
		threshold: threshold,
		loc:       loc,
		checks:    make(chan struct{}, 16),
		stopChan:  make(chan struct{}),
	}
}

// Start launches the worker goroutine that drains Enqueue requests. Failures
// inside the worker are logged and swallowed; they never reach a caller.
func (n *AlertNotifier) Start() {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for {
			select {
			case <-n.checks:
				n.runCheck()
			case <-n.stopChan:
				return
			}
		}
	}()
}

func (n *AlertNotifier) Stop() {
	close(n.stopChan)
	n.wg.Wait()
}

// Enqueue asks the worker to run a low-stock check. It never blocks: when
// the queue is full a check is already pending, which covers this request too.
func (n *AlertNotifier) Enqueue() {
	select {
	case n.checks <- struct{}{}:
	default:
	}
}

func (n *AlertNotifier) runCheck() {
	ingredients, err := n.ledger.All()
	if err != nil {
		utils.ErrorLogger.Printf("alert check: could not read ledger: %v", err)
		return
	}
	n.CheckAndSendAlerts(ingredients)
}

// CheckAndSendAlerts sends a low-stock alert when the low subset reaches the
// configured threshold and no alert went out today (business timezone).
func (n *AlertNotifier) CheckAndSendAlerts(ingredients []models.Ingredient) {
	low := lowStockSubset(ingredients)
	if len(low) < n.threshold {
		return
	}

	today := time.Now().In(n.loc).Format("2006-01-02")

	// Claim the day before sending so a concurrent check cannot pass the
	// gate while this send is in flight. A failed delivery releases the
	// claim so later checks retry the same day.
	n.mu.Lock()
	if n.lastAlertDate == today {
		n.mu.Unlock()
		utils.InfoLogger.Println("low-stock alert already sent today")
		return
	}
	n.lastAlertDate = today
	n.mu.Unlock()

	if err := n.sendAlert(low); err != nil {
		n.mu.Lock()
		if n.lastAlertDate == today {
			n.lastAlertDate = ""
		}
		n.mu.Unlock()
		utils.ErrorLogger.Printf("could not send low-stock alert: %v", err)
		return
	}

	utils.InfoLogger.Printf("low-stock alert sent: %d ingredients below minimum", len(low))
}

// ForceAlert bypasses the threshold and the daily dedup. It still does
// nothing when no ingredient is low; used for manual and test triggering.
func (n *AlertNotifier) ForceAlert(ingredients []models.Ingredient) {
	low := lowStockSubset(ingredients)
	if len(low) == 0 {
		utils.InfoLogger.Println("no low-stock ingredients, skipping forced alert")
		return
	}

	if err := n.sendAlert(low); err != nil {
		utils.ErrorLogger.Printf("could not send forced alert: %v", err)
		return
	}
	utils.InfoLogger.Printf("forced low-stock alert sent: %d ingredients", len(low))
}

func (n *AlertNotifier) sendAlert(low []models.Ingredient) error {
	if n.mailer == nil {
		utils.InfoLogger.Println("email alerts not configured, skipping delivery")
		return nil
	}

	subject, body, err := buildAlertEmail(low, time.Now().In(n.loc))
	if err != nil {
		return err
	}
	return n.mailer.Send(subject, body)
}

func lowStockSubset(ingredients []models.Ingredient) []models.Ingredient {
	var low []models.Ingredient
	for _, ing := range ingredients {
		if ing.IsLowStock() {
			low = append(low, ing)
		}
	}
	return low
}
