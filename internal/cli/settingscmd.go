package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/settings"
)

// SettingsCommand handles the settings command
type SettingsCommand struct {
	deps Deps
}

// NewSettingsCommand creates a new settings command
func NewSettingsCommand(deps Deps) *cobra.Command {
	cmd := &SettingsCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change persisted settings",
	}

	getCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Show one setting or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.RunGet,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE:  cmd.RunSet,
	}

	cobraCmd.AddCommand(getCmd)
	cobraCmd.AddCommand(setCmd)

	return cobraCmd
}

func settingsMap(cfg settings.Settings) map[string]string {
	return map[string]string{
		"default_ide":    cfg.DefaultIDE,
		"ide_command":    cfg.IDECommand,
		"workspace_path": cfg.WorkspacePath,
		"theme":          cfg.Theme,
		"default_suffix": cfg.DefaultSuffix,
		"scan_depth":     strconv.Itoa(cfg.ScanDepth),
	}
}

// RunGet executes settings get
func (c *SettingsCommand) RunGet(cmd *cobra.Command, args []string) error {
	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	values := settingsMap(cfg)

	if len(args) == 1 {
		value, ok := values[args[0]]
		if !ok {
			return fmt.Errorf("unknown setting %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, values[key])
	}
	return nil
}

// RunSet executes settings set
func (c *SettingsCommand) RunSet(cmd *cobra.Command, args []string) error {
	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "default_ide":
		previous := models.IDEConfigs[models.CoerceIDE(cfg.DefaultIDE)].Command
		cfg.DefaultIDE = string(models.CoerceIDE(value))
		// Keep the launch command in step unless it was overridden.
		if cfg.IDECommand == "" || cfg.IDECommand == previous {
			cfg.IDECommand = models.IDEConfigs[models.CoerceIDE(value)].Command
		}
	case "ide_command":
		cfg.IDECommand = value
	case "workspace_path":
		cfg.WorkspacePath = value
	case "theme":
		cfg.Theme = value
	case "default_suffix":
		cfg.DefaultSuffix = value
	case "scan_depth":
		depth, err := strconv.Atoi(value)
		if err != nil || depth < 1 {
			return fmt.Errorf("scan_depth must be a positive number")
		}
		cfg.ScanDepth = depth
	default:
		return fmt.Errorf("unknown setting %s", key)
	}

	if err := settings.NewStore(c.deps.FS).Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", key, settingsMap(cfg)[key])
	return nil
}
