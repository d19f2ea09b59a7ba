package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supporthub/helpdesk/internal/domain"
)

var (
	setFromName  string
	setFromEmail string
	setSignature string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update sender settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("from-name") &&
			!cmd.Flags().Changed("from-email") &&
			!cmd.Flags().Changed("signature") {
			s := app.State.Settings
			fmt.Printf("From: %s <%s>\n", s.FromName, s.FromEmail)
			fmt.Printf("Signature:\n%s\n", s.Signature)
			return nil
		}

		next := app.State.Settings
		if cmd.Flags().Changed("from-name") {
			next.FromName = setFromName
		}
		if cmd.Flags().Changed("from-email") {
			next.FromEmail = setFromEmail
		}
		if cmd.Flags().Changed("signature") {
			next.Signature = setSignature
		}
		app.Workspace.UpdateSettings(cmd.Context(), next)
		fmt.Println("Settings updated.")
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:       "plan [Free|Pro|Team]",
	Short:     "Show or change the subscription plan",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"Free", "Pro", "Team"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Printf("Plan: %s\n", app.State.Plan)
			return nil
		}
		plan := app.Workspace.ChangePlan(cmd.Context(), domain.Plan(args[0]))
		fmt.Printf("Plan set to %s\n", plan)
		return nil
	},
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Save, load, or clear the compose draft",
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the compose flags as a draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Workspace.SaveDraft(cmd.Context(), domain.ComposeDraft{
			To:       composeTo,
			Subject:  composeSubject,
			Body:     composeBody,
			Priority: domain.TicketPriority(composePriority),
			Tags:     splitTags(composeTags),
			SLAHours: composeSLA,
			AssignTo: composeAssign,
			Starred:  composeStarred,
		})
		fmt.Println("Draft saved.")
		return nil
	},
}

var draftLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Show the saved compose draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, ok := app.Workspace.LoadDraft()
		if !ok {
			fmt.Println("No draft.")
			return nil
		}
		fmt.Printf("To:       %s\n", draft.To)
		fmt.Printf("Subject:  %s\n", draft.Subject)
		fmt.Printf("Priority: %s\n", draft.Priority)
		fmt.Printf("Tags:     %s\n", strings.Join(draft.Tags, ", "))
		fmt.Printf("SLA:      %dh\n", draft.SLAHours)
		fmt.Printf("Body:\n%s\n", draft.Body)
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the saved compose draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Workspace.ClearDraft(cmd.Context())
		fmt.Println("Draft cleared.")
		return nil
	},
}

var opStatsCmd = &cobra.Command{
	Use:   "op-stats",
	Short: "Show engine operation counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, notices := app.Metrics.Snapshot()
		printCounters("Operations", ops)
		printCounters("Notices", notices)
		return nil
	},
}

func printCounters(title string, counters map[string]int64) {
	fmt.Println(title + ":")
	if len(counters) == 0 {
		fmt.Println("  (none)")
		return
	}
	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-30s %d\n", k, counters[k])
	}
}

func init() {
	settingsCmd.Flags().StringVar(&setFromName, "from-name", "", "sender display name")
	settingsCmd.Flags().StringVar(&setFromEmail, "from-email", "", "sender email address")
	settingsCmd.Flags().StringVar(&setSignature, "signature", "", "message signature")

	draftSaveCmd.Flags().StringVar(&composeTo, "to", "", "customer email")
	draftSaveCmd.Flags().StringVar(&composeSubject, "subject", "", "ticket subject")
	draftSaveCmd.Flags().StringVar(&composeBody, "body", "", "message body")
	draftSaveCmd.Flags().StringVar(&composePriority, "priority", "Medium", "ticket priority")
	draftSaveCmd.Flags().StringVar(&composeTags, "tags", "", "comma-separated tags")
	draftSaveCmd.Flags().IntVar(&composeSLA, "sla", 24, "SLA hours until due")
	draftSaveCmd.Flags().StringVar(&composeAssign, "assign", "", "assignee user id")
	draftSaveCmd.Flags().BoolVar(&composeStarred, "starred", false, "star the ticket")

	draftCmd.AddCommand(draftSaveCmd, draftLoadCmd, draftClearCmd)
	rootCmd.AddCommand(settingsCmd, planCmd, draftCmd, opStatsCmd)
}
