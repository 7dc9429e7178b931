package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	servicesCmd.Flags().BoolP("subsets", "s", false, "Also list every filter combination the browser indexes")
	servicesCmd.SetOut(os.Stdout)
}

var servicesCmd = &cobra.Command{
	Use:     "services",
	Short:   "List the streaming services available as filters",
	Long:    "List the streaming services available as filters. Edit them with `config set " + key.StreamingServices + "`.",
	Aliases: []string{"providers"},
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(catalog.Services()))
			return
		}

		for i, s := range catalog.Services() {
			cmd.Printf("%s %s %s\n",
				style.Faint(strconv.Itoa(i+1)),
				style.Fg(color.Purple)(s.Name),
				style.Fg(color.Yellow)(strconv.Itoa(s.ID)),
			)
		}

		if !lo.Must(cmd.Flags().GetBool("subsets")) {
			return
		}

		cmd.Println()
		for _, set := range filter.Subsets(catalog.Names()) {
			cmd.Println(style.Fg(color.Cyan)(set.String()))
		}
	},
}
