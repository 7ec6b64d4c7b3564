// Package intel simulates the intelligence log feed shown in the UI
// sidebar. Messages are template fills over the watchlist - there is no
// upstream data source. All randomness in the service lives here; the
// scoring engine stays deterministic.
package intel

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/apexintel/apex/internal/modules/watchlist"
)

var routineMessages = []string{
	"APEX Score synchronized with World Bank & IMF parameters... OK",
	"Global watchlist updated: 25 sovereigns active",
	"FX volatility scan complete... NOMINAL",
	"Bond yield data refreshed from Bloomberg API... OK",
	"Inflation metrics synchronized... OK",
	"Credit default swap spreads updated... OK",
	"Sovereign rating crosscheck complete... OK",
	"Debt sustainability analysis running... OK",
}

var countryScanMessages = []string{
	"Recalculating default probability for %s... OK",
	"Scanning FX volatility spreads for %s... %s",
	"Analyzing yield curve inversion for %s... %s",
	"Debt rollover risk assessment for %s... %s",
	"External financing gap calculated for %s... OK",
	"Current account deficit monitored for %s... %s",
}

var alertMessages = []string{
	"ALERT: %s yield spread exceeds 2000bps threshold",
	"ALERT: %s inflation rate critical (>100%%)",
	"ALERT: %s FX reserves below 3-month import cover",
	"WARNING: %s APEX score declined 5pts in 24h",
	"ALERT: %s sovereign CDS spread widening detected",
}

var bootMessages = []string{
	"APEX scoring algorithm online... OK",
	"World Bank API connection... ESTABLISHED",
	"IMF WEO data synchronized... OK",
	"Bloomberg terminal link... ACTIVE",
	"SYSTEM STATUS: OPERATIONAL",
}

// Sovereigns under elevated surveillance. Scan statuses escalate for
// these, and alert messages only ever name them.
var highRiskCodes = []string{"LBN", "ARG", "VEN", "GHA", "EGY", "TUR", "PAK"}

var highRiskSet = func() map[string]bool {
	set := make(map[string]bool, len(highRiskCodes))
	for _, code := range highRiskCodes {
		set[code] = true
	}
	return set
}()

// Message is one simulated intelligence log entry.
type Message struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // HH:MM:SS
	Text      string `json:"text"`
}

// Generator produces simulated intelligence messages.
type Generator struct {
	watchlist *watchlist.Provider
	rng       *rand.Rand
	now       func() time.Time
}

// NewGenerator creates a time-seeded generator over the given watchlist.
func NewGenerator(wl *watchlist.Provider) *Generator {
	return &Generator{
		watchlist: wl,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

// newSeededGenerator is used by tests that need deterministic output.
func newSeededGenerator(wl *watchlist.Provider, seed int64, now func() time.Time) *Generator {
	return &Generator{
		watchlist: wl,
		rng:       rand.New(rand.NewSource(seed)),
		now:       now,
	}
}

// Generate produces count simulated messages. Roll distribution:
// 40% routine, 35% country scan, 25% alert.
func (g *Generator) Generate(count int) []Message {
	codes := g.watchlist.Codes()
	alertCodes := make([]string, 0, len(highRiskCodes))
	for _, code := range codes {
		if highRiskSet[code] {
			alertCodes = append(alertCodes, code)
		}
	}
	messages := make([]Message, 0, count)

	for i := 0; i < count; i++ {
		roll := g.rng.Float64()

		var text string
		switch {
		case roll < 0.40 || len(codes) == 0:
			text = routineMessages[g.rng.Intn(len(routineMessages))]
		case roll < 0.75 || len(alertCodes) == 0:
			code := codes[g.rng.Intn(len(codes))]
			status := "NOMINAL"
			if highRiskSet[code] && g.rng.Float64() < 0.3 {
				status = "ALERT"
			}
			text = fillTemplate(countryScanMessages[g.rng.Intn(len(countryScanMessages))], code, status)
		default:
			code := alertCodes[g.rng.Intn(len(alertCodes))]
			text = fmt.Sprintf(alertMessages[g.rng.Intn(len(alertMessages))], code)
		}

		messages = append(messages, g.message(text))
	}
	return messages
}

// BootSequence returns the fixed startup banner messages.
func (g *Generator) BootSequence() []Message {
	messages := make([]Message, 0, len(bootMessages))
	for _, text := range bootMessages {
		messages = append(messages, g.message(text))
	}
	return messages
}

func (g *Generator) message(text string) Message {
	return Message{
		ID:        uuid.New().String(),
		Timestamp: g.now().Format("15:04:05"),
		Text:      text,
	}
}

// fillTemplate handles scan templates that take either one or two
// placeholders.
func fillTemplate(template, code, status string) string {
	if countVerbs(template) == 1 {
		return fmt.Sprintf(template, code)
	}
	return fmt.Sprintf(template, code, status)
}

func countVerbs(template string) int {
	count := 0
	for i := 0; i < len(template)-1; i++ {
		if template[i] == '%' {
			if template[i+1] == '%' {
				i++
				continue
			}
			count++
		}
	}
	return count
}
