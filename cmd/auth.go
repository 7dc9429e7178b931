package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/reelroll-cli/reelroll/auth"
	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/reelroll-cli/reelroll/tmdb"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().BoolP("delete", "d", false, "Remove the stored key from the system keyring")
	authCmd.Flags().Bool("no-verify", false, "Store the key without checking it against TMDB")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Store a TMDB API key in the system keyring",
	Long: `Prompt for a TMDB API key (v3) or read access token (v4), verify it and store it
in the system keyring. The ` + key.TMDBAPIKey + ` setting takes precedence over the stored key.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("delete")) {
			handleErr(auth.DeleteKey())
			fmt.Printf("%s removed stored key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		var apiKey string
		handleErr(survey.AskOne(&survey.Password{
			Message: "TMDB API key or read access token",
		}, &apiKey, survey.WithValidator(survey.Required)))

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("empty key"))
		}

		if !lo.Must(cmd.Flags().GetBool("no-verify")) {
			erase := util.PrintErasable(fmt.Sprintf("%s Verifying key...", icon.Get(icon.Progress)))
			err := verifyKey(apiKey)
			erase()
			handleErr(err)
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s key stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func verifyKey(apiKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := tmdb.New(tmdb.Options{
		BaseURL: viper.GetString(key.TMDBBaseURL),
		Key:     apiKey,
	})

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("key was rejected: %w", err)
	}
	return nil
}
