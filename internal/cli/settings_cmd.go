package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// maxLogoBytes caps the logo image size at the input boundary.
const maxLogoBytes = 500_000

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change troop settings",
	}
	cmd.AddCommand(newSettingsShowCmd(a), newSettingsSetCmd(a))
	return cmd
}

func newSettingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := a.settings.Get(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Troop:       %s\n", settings.TroopName)
			fmt.Fprintf(out, "Leader:      %s\n", settings.LeaderName)
			fmt.Fprintf(out, "Coordinator: %s\n", settings.CoordinatorName)
			fmt.Fprintf(out, "Secretary:   %s\n", settings.SecretaryName)
			logo := "none"
			if settings.LogoURL != "" {
				logo = fmt.Sprintf("set (%d bytes)", len(settings.LogoURL))
			}
			fmt.Fprintf(out, "Logo:        %s\n", logo)
			return nil
		},
	}
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var (
		troop       string
		leader      string
		coordinator string
		secretary   string
		logoPath    string
		clearLogo   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update one or more settings fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			settings := a.settings.Get(ctx)

			if cmd.Flags().Changed("troop") {
				settings.TroopName = troop
			}
			if cmd.Flags().Changed("leader") {
				settings.LeaderName = leader
			}
			if cmd.Flags().Changed("coordinator") {
				settings.CoordinatorName = coordinator
			}
			if cmd.Flags().Changed("secretary") {
				settings.SecretaryName = secretary
			}
			if clearLogo {
				settings.LogoURL = ""
			}
			if logoPath != "" {
				dataURL, err := encodeLogo(logoPath)
				if err != nil {
					return err
				}
				settings.LogoURL = dataURL
			}

			if err := a.settings.Save(ctx, settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&troop, "troop", "", "Troop display name")
	cmd.Flags().StringVar(&leader, "leader", "", "Leader name")
	cmd.Flags().StringVar(&coordinator, "coordinator", "", "Coordinator name")
	cmd.Flags().StringVar(&secretary, "secretary", "", "Secretary name")
	cmd.Flags().StringVar(&logoPath, "logo", "", "Path to a logo image, embedded as a data URL")
	cmd.Flags().BoolVar(&clearLogo, "clear-logo", false, "Remove the stored logo")
	return cmd
}

// encodeLogo reads an image file and returns it as a base64 data URL.
func encodeLogo(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > maxLogoBytes {
		return "", fmt.Errorf("logo %s is %d bytes, the limit is %d", path, len(data), maxLogoBytes)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
