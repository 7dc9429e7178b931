package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that TMDB is reachable with the configured credentials",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()
		client := newSource()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			printCheckFailure(err)
			return
		}

		fmt.Printf("%s TMDB reachable, region %s, filtering by %s\n",
			icon.Get(icon.Success),
			style.Fg(style.AccentColor)(client.Region()),
			style.Bold(fmt.Sprint(catalog.Names())),
		)
	},
}

func printCheckFailure(err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s TMDB check failed", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(err.Error())
	hint := fmt.Sprintf("Store a key with %s", style.New().Foreground(style.AccentColor).Bold(true).Render("reelroll auth"))

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)))
}
