// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/config"
	"github.com/catwalk-dev/catwalk/internal/issue"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage catwalk configuration",
	Long: `Manage catwalk configuration.

Configuration is stored in:
  - Linux: ~/.config/catwalk/config.toml
  - macOS: ~/Library/Application Support/catwalk/config.toml
  - Windows: %APPDATA%\catwalk\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), args[0], args[1])
		},
	})
}

func showConfig(ctx context.Context) error {
	loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(os.Stderr, issue.ConfigLoadFailedId)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	// Derive config file path from the standard config directory since the
	// provider does not cache resolved paths.
	cfgDir, dirErr := config.ConfigDir()
	if dirErr == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if fileExistsCheck(cfgPath) {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	if loaded.UserAgent == "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("user_agent"), SubtitleStyle.Render("(built-in)"))
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("user_agent"), valueStyle.Render(loaded.UserAgent))
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("http"))
	fmt.Printf("  timeout: %s\n", valueStyle.Render(loaded.HTTP.Timeout.String()))
	fmt.Printf("  delay: %s\n", valueStyle.Render(loaded.HTTP.Delay.String()))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("setup"))
	fmt.Printf("  venv_dir: %s\n", valueStyle.Render(loaded.Setup.VenvDir.String()))
	if loaded.Setup.Python == "" {
		fmt.Printf("  python: %s\n", SubtitleStyle.Render("(auto-detect)"))
	} else {
		fmt.Printf("  python: %s\n", valueStyle.Render(loaded.Setup.Python.String()))
	}
	fmt.Printf("  requirements: %s\n", valueStyle.Render(loaded.Setup.Requirements.String()))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("output"))
	if loaded.Output.Dir == "" {
		fmt.Printf("  dir: %s\n", SubtitleStyle.Render("(current directory)"))
	} else {
		fmt.Printf("  dir: %s\n", valueStyle.Render(loaded.Output.Dir.String()))
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(loaded.UI.ColorScheme)))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func initConfig() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s/config.toml\n", SuccessStyle.Render("✓"), cfgDir)
	return nil
}

func setConfigValue(ctx context.Context, key, value string) error {
	loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	switch key {
	case "user_agent":
		loaded.UserAgent = value

	case "http.timeout":
		d, parseErr := time.ParseDuration(value)
		if parseErr != nil || d <= 0 {
			return fmt.Errorf("invalid http.timeout: must be a positive duration like '20s'")
		}
		loaded.HTTP.Timeout = d

	case "http.delay":
		d, parseErr := time.ParseDuration(value)
		if parseErr != nil || d < 0 {
			return fmt.Errorf("invalid http.delay: must be a non-negative duration like '500ms'")
		}
		loaded.HTTP.Delay = d

	case "setup.venv_dir":
		v := config.VenvDirPath(value)
		if ok, errs := v.IsValid(); !ok {
			return errs[0]
		}
		loaded.Setup.VenvDir = v

	case "setup.python":
		v := config.PythonPath(value)
		if ok, errs := v.IsValid(); !ok {
			return errs[0]
		}
		loaded.Setup.Python = v

	case "setup.requirements":
		v := config.RequirementsPath(value)
		if ok, errs := v.IsValid(); !ok {
			return errs[0]
		}
		loaded.Setup.Requirements = v

	case "output.dir":
		v := config.OutputDirPath(value)
		if ok, errs := v.IsValid(); !ok {
			return errs[0]
		}
		loaded.Output.Dir = v

	case "ui.color_scheme":
		v := config.ColorScheme(value)
		if ok, errs := v.IsValid(); !ok {
			return errs[0]
		}
		loaded.UI.ColorScheme = v

	case "ui.verbose":
		loaded.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: user_agent, http.timeout, http.delay, setup.venv_dir, setup.python, setup.requirements, output.dir, ui.color_scheme, ui.verbose", key)
	}

	if err := config.Save(loaded); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
