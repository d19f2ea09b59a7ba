// Package codec serializes tickets and canned replies for export and import.
package codec

import (
	"strings"
	"time"

	"github.com/supporthub/helpdesk/internal/domain"
)

var csvHeader = []string{"id", "subject", "customer", "status", "priority", "tags", "dueAt", "updatedAt"}

// TicketsToCSV renders the collection in its current order, one row per
// ticket. Every field is double-quote wrapped with inner quotes doubled, and
// tags are joined with "|".
func TicketsToCSV(tickets []domain.Ticket) string {
	rows := make([]string, 0, len(tickets)+1)
	rows = append(rows, csvRow(csvHeader))
	for _, t := range tickets {
		rows = append(rows, csvRow([]string{
			t.ID,
			t.Subject,
			t.Customer,
			string(t.Status),
			string(t.Priority),
			strings.Join(t.Tags, "|"),
			t.DueAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		}))
	}
	return strings.Join(rows, "\n")
}

func csvRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
