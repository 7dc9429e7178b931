package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/inline"
	"github.com/reelroll-cli/reelroll/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringSliceP("filter", "f", []string{}, "Streaming services the movies must be available on")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("filter", completionServices))
	inlineCmd.Flags().StringP("query", "q", "", "Rank the movies by how well their title matches the query")
	inlineCmd.Flags().IntP("limit", "n", inline.DefaultLimit, "Number of movies to print")
	inlineCmd.Flags().IntP("pages", "p", 0, "Maximum number of pages to load, 0 means until the limit is reached")
	inlineCmd.Flags().StringP("pick", "P", "", "Select a single movie: first, last, exact:<title> or an index")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print matching movies without the interactive browser",
	Long: `Load pages of popular movies until enough of them are available on the
requested services, then print them one per line or as JSON.

Pickers:
  first - first movie in the result
  last - last movie in the result
  exact:[title] - movie whose title matches, ignoring case
  [number] - select movie by index (starting from 0)`,
	Example: "  reelroll inline -f Netflix -f Prime -n 5 --json",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()
		set, err := filter.Parse(catalog, lo.Must(cmd.Flags().GetStringSlice("filter"))...)
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		picker := mo.None[inline.Picker]()
		if description := lo.Must(cmd.Flags().GetString("pick")); description != "" {
			fn, err := inline.ParsePicker(description)
			handleErr(err)
			picker = mo.Some(fn)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(inline.Run(ctx, &inline.Options{
			Out:     writer,
			Source:  newSource(),
			Catalog: catalog,
			Fetch:   fetch.OptionsFromConfig(),
			Filter:  set,
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Limit:   lo.Must(cmd.Flags().GetInt("limit")),
			Pages:   lo.Must(cmd.Flags().GetInt("pages")),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Picker:  picker,
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "movie", "providerref", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
