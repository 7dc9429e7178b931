// Package cmd implements the command-line interface for reelroll.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/constant"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/reelroll-cli/reelroll/tmdb"
	"github.com/reelroll-cli/reelroll/tui"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/reelroll-cli/reelroll/version"
	"github.com/reelroll-cli/reelroll/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("region", "r", "", "Region whose streaming availability is used, e.g. US or DE")
	lo.Must0(viper.BindPFlag(key.TMDBRegion, rootCmd.PersistentFlags().Lookup("region")))

	rootCmd.Flags().StringSliceP("filter", "f", []string{}, "Streaming services to start filtered by")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("filter", completionServices))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Reelroll,
	Short: "Browse popular movies by the streaming services that carry them",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse popular movies by the streaming services that carry them"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		catalog := loadCatalog()
		set, err := filter.Parse(catalog, lo.Must(cmd.Flags().GetStringSlice("filter"))...)
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Source:  newSource(),
			Catalog: catalog,
			Filter:  set,
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadCatalog() *streaming.Catalog {
	catalog, err := streaming.FromConfig()
	handleErr(err)
	return catalog
}

func newSource() *tmdb.Client {
	options, err := tmdb.OptionsFromConfig()
	handleErr(err)
	return tmdb.New(options)
}

func completionServices(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	catalog, err := streaming.FromConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
