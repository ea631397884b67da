package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the characters in a table",
	Long:  "Display the characters, live or from a stored snapshot, in a formatted table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := loadContent(cmd)
		if err != nil {
			return err
		}

		cards := gallery.BuildCards(content)
		if len(cards) == 0 {
			fmt.Println("No characters.")
			return nil
		}

		columns := []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 34},
			{Title: "Status", Width: 18},
			{Title: "Gender", Width: 18},
		}

		rows := make([]table.Row, 0, len(cards))
		for _, card := range cards {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", card.Key),
				truncateString(card.Name, 32),
				card.StatusLine(),
				card.GenderLine(),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🧪 Characters (%d)\n\n", len(cards))
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	listCmd.Flags().String("snapshot", "", "read a stored snapshot id, or \"latest\", instead of fetching")
}
