package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supporthub/helpdesk/internal/service"
)

var (
	cannedTitle    string
	cannedShortcut string
	cannedBody     string
	cannedOut      string
	expandAgent    string
	expandName     string
)

var cannedCmd = &cobra.Command{
	Use:   "canned",
	Short: "Manage canned replies",
}

var cannedAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a canned reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, notice := app.Canned.Add(cmd.Context(), cannedTitle, cannedShortcut, cannedBody)
		if notice != nil {
			fmt.Println(notice.Message)
			return nil
		}
		fmt.Printf("Canned reply %s added (%s)\n", reply.ID, reply.Shortcut)
		return nil
	},
}

var cannedRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a canned reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Canned.Delete(cmd.Context(), args[0])
		fmt.Println("Deleted.")
		return nil
	},
}

var cannedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List canned replies",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(app.State.Canned) == 0 {
			fmt.Println("No canned replies yet.")
			return nil
		}
		for _, c := range app.State.Canned {
			fmt.Printf("%-8s  %-12s  %s\n", c.ID, c.Shortcut, c.Title)
		}
		return nil
	},
}

var cannedExpandCmd = &cobra.Command{
	Use:   "expand [shortcut]",
	Short: "Print a canned reply with its placeholders filled in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, ok := app.Canned.ByShortcut(args[0])
		if !ok {
			return fmt.Errorf("no canned reply with shortcut %q", args[0])
		}
		fmt.Println(service.Expand(reply.Body, service.ExpandVars{Agent: expandAgent, Name: expandName}))
		return nil
	},
}

var cannedExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export canned replies to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := app.Canned.ExportJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cannedOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cannedOut, err)
		}
		fmt.Printf("Exported %d canned replies to %s\n", len(app.State.Canned), cannedOut)
		return nil
	},
}

var cannedImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import canned replies from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		result, err := app.Canned.ImportJSON(cmd.Context(), string(raw))
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("Imported %d of %d canned replies\n", result.Imported, result.Imported+result.Skipped)
		return nil
	},
}

func init() {
	cannedAddCmd.Flags().StringVar(&cannedTitle, "title", "", "reply title (required)")
	cannedAddCmd.Flags().StringVar(&cannedShortcut, "shortcut", "", "shortcut, e.g. /welcome (required)")
	cannedAddCmd.Flags().StringVar(&cannedBody, "body", "", "template body (required)")
	_ = cannedAddCmd.MarkFlagRequired("title")
	_ = cannedAddCmd.MarkFlagRequired("shortcut")
	_ = cannedAddCmd.MarkFlagRequired("body")

	cannedExpandCmd.Flags().StringVar(&expandAgent, "agent", "Agent", "value for {{agent}}")
	cannedExpandCmd.Flags().StringVar(&expandName, "name", "Customer", "value for {{name}}")
	cannedExportCmd.Flags().StringVar(&cannedOut, "out", "canned.json", "output file")

	cannedCmd.AddCommand(cannedAddCmd, cannedRmCmd, cannedListCmd, cannedExpandCmd, cannedExportCmd, cannedImportCmd)
	rootCmd.AddCommand(cannedCmd)
}
