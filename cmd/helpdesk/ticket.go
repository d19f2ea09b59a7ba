package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/supporthub/helpdesk/internal/codec"
	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/internal/query"
	"github.com/supporthub/helpdesk/internal/service"
)

var (
	composeTo       string
	composeSubject  string
	composeBody     string
	composePriority string
	composeTags     string
	composeSLA      int
	composeAssign   string
	composeStarred  bool

	listSearch   string
	listStatus   string
	listPriority string
	listSort     string
	listDir      string
	listJSON     bool

	bulkIDs      []string
	snoozeHours  int
	exportOut    string
	inboxSearch  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Compose and send a new ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The signature is a view concern: it is appended here, not by the engine.
		body := strings.TrimSpace(composeBody + "\n\n" + app.State.Settings.Signature)
		ticket, notice, err := app.Tickets.Create(cmd.Context(), service.TicketCreateInput{
			To:       composeTo,
			Subject:  composeSubject,
			Body:     body,
			Priority: domain.TicketPriority(composePriority),
			Tags:     splitTags(composeTags),
			SLAHours: composeSLA,
			AssignTo: composeAssign,
			Starred:  composeStarred,
		})
		if err != nil {
			return err
		}
		if notice != nil {
			fmt.Println(notice.Message + ". Upgrade to create more.")
			return nil
		}
		fmt.Printf("Ticket %s created (due %s)\n", ticket.ID, ticket.DueAt.Format(time.RFC3339))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets with filtering and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		tickets := query.Filter(app.State.Tickets, query.Query{
			Text:     listSearch,
			Status:   domain.TicketStatus(listStatus),
			Priority: domain.TicketPriority(listPriority),
		})
		tickets = query.Sort(tickets, listSort, listDir)

		if listJSON {
			raw, err := json.MarshalIndent(tickets, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		}

		if len(tickets) == 0 {
			fmt.Println("No tickets.")
			return nil
		}
		for _, t := range tickets {
			star := " "
			if t.Starred {
				star = "*"
			}
			fmt.Printf("%s %-8s  %-7s  %-6s  %-40s  %s  due %s\n",
				star, t.ID, t.Status, t.Priority, truncate(t.Subject, 40),
				t.Customer, t.DueAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:       "status [Open|Pending|Closed|Snoozed]",
	Short:     "Move the selected tickets to a status",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"Open", "Pending", "Closed", "Snoozed"},
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, notice := app.Tickets.UpdateStatus(cmd.Context(), bulkIDs, domain.TicketStatus(args[0]))
		if notice != nil {
			fmt.Println(notice.Message)
			return nil
		}
		fmt.Printf("%d ticket(s) moved to %s\n", len(updated), args[0])
		return nil
	},
}

var snoozeCmd = &cobra.Command{
	Use:   "snooze",
	Short: "Snooze the selected tickets, deferring their due time",
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, notice := app.Tickets.Snooze(cmd.Context(), bulkIDs, snoozeHours)
		if notice != nil {
			fmt.Println(notice.Message)
			return nil
		}
		fmt.Printf("%d ticket(s) snoozed for %dh\n", len(updated), snoozeHours)
		return nil
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Export all tickets to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		csv := codec.TicketsToCSV(app.State.Tickets)
		if err := os.WriteFile(exportOut, []byte(csv), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Printf("Exported %d ticket(s) to %s\n", len(app.State.Tickets), exportOut)
		return nil
	},
}

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List inbox messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		messages := query.SearchInbox(app.State.Inbox, inboxSearch)
		if len(messages) == 0 {
			fmt.Println("No messages.")
			return nil
		}
		for _, m := range messages {
			star := ""
			if m.Starred {
				star = " *"
			}
			fmt.Printf("%s  %s -> %s  %s%s\n", m.At.Format("2006-01-02 15:04"), m.From, m.To, m.Subject, star)
		}
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show derived ticket metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := app.Tickets.Metrics()
		fmt.Printf("Open: %d\n", m.Open)
		fmt.Printf("SLA at risk: %d\n", m.SLAAtRisk)
		if m.AvgFirstReplyOK {
			fmt.Printf("Avg. first reply: %d mins\n", m.AvgFirstReply)
		} else {
			fmt.Println("Avg. first reply: —")
		}
		fmt.Printf("Today: %d created, %d closed\n", m.CreatedToday, m.ClosedToday)
		return nil
	},
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// truncate shortens s to max display runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	createCmd.Flags().StringVar(&composeTo, "to", "", "customer email (required)")
	createCmd.Flags().StringVar(&composeSubject, "subject", "", "ticket subject (required)")
	createCmd.Flags().StringVar(&composeBody, "body", "", "message body")
	createCmd.Flags().StringVar(&composePriority, "priority", "Medium", "Low, Medium, High, or Urgent")
	createCmd.Flags().StringVar(&composeTags, "tags", "", "comma-separated tags")
	createCmd.Flags().IntVar(&composeSLA, "sla", 24, "SLA hours until due")
	createCmd.Flags().StringVar(&composeAssign, "assign", "", "assignee user id")
	createCmd.Flags().BoolVar(&composeStarred, "starred", false, "star the ticket")
	_ = createCmd.MarkFlagRequired("to")
	_ = createCmd.MarkFlagRequired("subject")

	listCmd.Flags().StringVar(&listSearch, "search", "", "match subject, customer, or tags")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort key: priority, dueAt, or updatedAt")
	listCmd.Flags().StringVar(&listDir, "dir", "desc", "sort direction: asc or desc")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON")

	statusCmd.Flags().StringSliceVar(&bulkIDs, "ids", nil, "ticket ids")
	snoozeCmd.Flags().StringSliceVar(&bulkIDs, "ids", nil, "ticket ids")
	snoozeCmd.Flags().IntVar(&snoozeHours, "hours", 24, "hours to snooze")

	exportCSVCmd.Flags().StringVar(&exportOut, "out", "tickets.csv", "output file")
	inboxCmd.Flags().StringVar(&inboxSearch, "search", "", "match subject, sender, recipient, or body")

	rootCmd.AddCommand(createCmd, listCmd, statusCmd, snoozeCmd, exportCSVCmd, inboxCmd, metricsCmd)
}
