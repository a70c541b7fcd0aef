package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// tripLine renders "[id] name (destination) from start to end in currency".
func tripLine(t domain.Trip) string {
	destination := "Unknown destination"
	if t.Destination != nil && strings.TrimSpace(*t.Destination) != "" {
		destination = *t.Destination
	}
	return fmt.Sprintf("[%s] %s (%s) from %s to %s in %s",
		t.ID, t.Name, destination, formatDate(t.StartDate), formatDate(t.EndDate), t.Currency)
}

// transactionLine renders "[id] date • currency amount @ merchant | location | description".
// The amount is always shown as an absolute value.
func transactionLine(tx domain.Transaction) string {
	merchant := firstNonEmpty(tx.Merchant, tx.Description, "Unknown merchant")
	location := firstNonEmpty(tx.Location.String(), "Unknown location")
	description := firstNonEmpty(tx.Description, "No description")

	return fmt.Sprintf("[%s] %s • %s %s @ %s | %s | %s",
		tx.ID,
		tx.PostedAt.UTC().Format(time.DateOnly),
		tx.Currency,
		tx.Amount.Abs().StringFixed(2),
		merchant,
		location,
		description,
	)
}

func tripBlock(trips []domain.Trip) string {
	lines := make([]string, len(trips))
	for i, t := range trips {
		lines[i] = tripLine(t)
	}
	return strings.Join(lines, "\n")
}

func transactionBlock(txs []domain.Transaction) string {
	lines := make([]string, len(txs))
	for i, tx := range txs {
		lines[i] = transactionLine(tx)
	}
	return strings.Join(lines, "\n")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.UTC().Format(time.DateOnly)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
