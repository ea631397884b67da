package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/gallery/pkg/services"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch the characters and store them",
	Long:  "Fetch the characters once and store the listing in the snapshot database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := newController()
		if err != nil {
			return err
		}
		defer controller.Close()

		if history, _ := cmd.Flags().GetBool("history"); history {
			return printHistory(controller)
		}

		if id, _ := cmd.Flags().GetString("delete"); id != "" {
			if err := controller.Delete(id); err != nil {
				return err
			}
			fmt.Printf("🗑️  Deleted snapshot %s\n", id)
			return nil
		}

		snapshot, err := controller.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}

		fmt.Printf("✅ Stored %d characters as snapshot %s\n", len(snapshot.Characters), snapshot.ID)
		return nil
	},
}

func printHistory(controller *services.GalleryController) error {
	snapshots, err := controller.History()
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Println("No snapshots stored. Use 'gallery snapshot' to take one.")
		return nil
	}

	var (
		green = lipgloss.Color("#97CE4C")

		headerStyle = lipgloss.NewStyle().Foreground(green).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(green)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "ID", "Taken at", "Characters", "Endpoint")

	for i, snapshot := range snapshots {
		count, err := controller.Count(snapshot.ID)
		if err != nil {
			return err
		}
		t.Row(fmt.Sprintf("%d", i+1), snapshot.ID, snapshot.TakenAt.Format(time.RFC3339), fmt.Sprintf("%d", count), snapshot.Endpoint)
	}

	fmt.Println(t)
	return nil
}

func init() {
	snapshotCmd.Flags().Bool("history", false, "list stored snapshots instead of taking one")
	snapshotCmd.Flags().String("delete", "", "delete the stored snapshot with this id")
	snapshotCmd.MarkFlagsMutuallyExclusive("history", "delete")
}
