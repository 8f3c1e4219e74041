package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/sagarc03/drills/clientcli"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Manage server profiles",
	Long: `Manage server profiles in the configuration file.

Profiles save the endpoint of each drills server so you can switch
between them using --profile or DRILLS_PROFILE.

Configuration is stored in ~/.drills/config.yaml`,
}

var configureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured profiles",
	Long: `List all profiles configured in the config file.

The default profile is marked with an asterisk (*).`,
	Args: cobra.NoArgs,
	RunE: runConfigureList,
}

var configureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a profile",
	Long: `Add a profile interactively.

You will be prompted for the endpoint URL and whether to make the profile
the default. The endpoint is pinged before saving.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigureAdd,
}

var configureRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigureRemove,
}

var configureSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigureSetDefault,
}

var configureShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Long:  `Show details for a profile. If no name is provided, shows the default profile.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigureShow,
}

func init() {
	configureCmd.AddCommand(configureListCmd)
	configureCmd.AddCommand(configureAddCmd)
	configureCmd.AddCommand(configureRemoveCmd)
	configureCmd.AddCommand(configureSetDefaultCmd)
	configureCmd.AddCommand(configureShowCmd)
}

// loadProfiles reads the profiles file; a missing file yields an empty set.
func loadProfiles(path string) (*clientcli.ConfigFile, error) {
	cf, err := clientcli.LoadConfigFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &clientcli.ConfigFile{}, nil
	case err != nil:
		return nil, err
	}
	return cf, nil
}

// confirm asks a yes/no question; anything but "y" counts as no.
func confirm(label string) bool {
	_, err := (&promptui.Prompt{Label: label, IsConfirm: true}).Run()
	return err == nil
}

func saveProfiles(cf *clientcli.ConfigFile, path, done string) error {
	if err := cf.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Println(done)
	return nil
}

func runConfigureList(_ *cobra.Command, _ []string) error {
	cf, err := loadProfiles(getConfigPath())
	if err != nil {
		return err
	}

	def, err := cf.GetDefaultProfile()
	if errors.Is(err, clientcli.ErrNoProfiles) {
		fmt.Println("No profiles configured. Run 'drills-cli configure add <name>' to create one.")
		return nil
	}
	if err != nil {
		return err
	}

	return getFormatter().FormatProfileList(os.Stdout, cf.Profiles, def.Name)
}

func runConfigureAdd(cmd *cobra.Command, args []string) error {
	name, path := args[0], getConfigPath()

	cf, err := loadProfiles(path)
	if err != nil {
		return err
	}

	existing, _ := cf.GetProfile(name)
	if existing != nil && !confirm(fmt.Sprintf("Profile '%s' already exists. Update it", name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	suggested := clientcli.DefaultEndpoint
	if existing != nil {
		suggested = existing.Endpoint
	}
	endpointURL, err := (&promptui.Prompt{
		Label:    "Endpoint URL",
		Default:  suggested,
		Validate: clientcli.ValidateEndpoint,
	}).Run()
	if err != nil {
		return handlePromptError(err)
	}

	p := clientcli.Profile{Name: name, Endpoint: strings.TrimSuffix(endpointURL, "/")}
	// The only profile is always the default.
	p.Default = len(cf.Profiles) == 0 ||
		(existing != nil && len(cf.Profiles) == 1) ||
		confirm("Set as default profile")

	fmt.Print("Pinging ", p.Endpoint, "... ")
	if pingErr := testServerConnection(cmd.Context(), p.Endpoint); pingErr != nil {
		fmt.Println("FAILED:", pingErr)
		if !confirm("Save profile anyway") {
			fmt.Println("Cancelled.")
			return nil
		}
	} else {
		fmt.Println("OK")
	}

	verb := "added"
	if existing != nil {
		verb = "updated"
		err = cf.UpdateProfile(p)
	} else {
		err = cf.AddProfile(p)
	}
	if err != nil {
		return err
	}
	if p.Default {
		if err := cf.SetDefault(name); err != nil {
			return err
		}
	}

	return saveProfiles(cf, path, fmt.Sprintf("Profile '%s' %s.", name, verb))
}

func runConfigureRemove(_ *cobra.Command, args []string) error {
	name, path := args[0], getConfigPath()

	cf, err := loadProfiles(path)
	if err != nil {
		return err
	}
	if _, err := cf.GetProfile(name); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Remove profile '%s'", name)) {
		fmt.Println("Cancelled.")
		return nil
	}
	if err := cf.RemoveProfile(name); err != nil {
		return err
	}

	return saveProfiles(cf, path, fmt.Sprintf("Profile '%s' removed.", name))
}

func runConfigureSetDefault(_ *cobra.Command, args []string) error {
	name, path := args[0], getConfigPath()

	cf, err := loadProfiles(path)
	if err != nil {
		return err
	}
	if err := cf.SetDefault(name); err != nil {
		return err
	}

	return saveProfiles(cf, path, fmt.Sprintf("Default profile set to '%s'.", name))
}

func runConfigureShow(_ *cobra.Command, args []string) error {
	cf, err := loadProfiles(getConfigPath())
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	p, err := cf.GetProfile(name)
	if err != nil {
		return err
	}
	def, _ := cf.GetDefaultProfile()

	return getFormatter().FormatProfileShow(os.Stdout, *p, def != nil && def.Name == p.Name)
}

// testServerConnection pings the index route of the server.
func testServerConnection(ctx context.Context, endpointURL string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := clientcli.New(&clientcli.Config{Endpoint: endpointURL})
	if err != nil {
		return err
	}
	return client.Ping(ctx)
}

// handlePromptError turns Ctrl-C into a clean exit and Esc into a no-op.
func handlePromptError(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt):
		fmt.Println("\nCancelled.")
		os.Exit(0)
	case errors.Is(err, promptui.ErrAbort):
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
