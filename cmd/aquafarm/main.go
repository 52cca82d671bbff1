package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"aquafarm/internal/app"
	"aquafarm/internal/config"
	"aquafarm/internal/encryption"
	"aquafarm/internal/farm"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a FarmApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Login", "StockCage").
func newApp(operation string) (*app.FarmApp, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewFarmApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// readPassword prompts on stderr and reads a password without echo.
// Falls back to a plain line read when stdin is not a terminal.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseFloatArg parses a positional numeric argument, naming it in the error.
func parseFloatArg(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, s)
	}
	return v, nil
}

func parseIntArg(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, s)
	}
	return v, nil
}

var rootCmd = &cobra.Command{
	Use:   "aquafarm",
	Short: "Aquaculture farm record keeper",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Database:  %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("Keys:      %s / %s\n", cfg.Encryption.PublicKeyPath, cfg.Encryption.PrivateKeyPath)
		return nil
	},
}

// keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage backup encryption keys",
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			return fmt.Errorf("creating encryptor: %w", err)
		}

		if enc.IsConfigured() {
			return fmt.Errorf("keys already exist at %s", cfg.Encryption.PrivateKeyPath)
		}

		pass, err := readPassword("Passphrase for private key: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return err
		}
		if pass != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		if err := enc.Setup(pass); err != nil {
			return fmt.Errorf("generating keys: %w", err)
		}

		fmt.Printf("Key pair written to %s\n", cfg.Encryption.PublicKeyPath)
		return nil
	},
}

// status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a farm summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Status")
		if err != nil {
			return err
		}
		defer a.Close()

		sum := a.Service().Summarize()

		fmt.Printf("Lines:   %d\n", sum.TotalLines)
		fmt.Printf("Batches: %d\n", sum.TotalBatches)
		fmt.Printf("Cages:")
		if len(sum.CagesByStatus) == 0 {
			fmt.Printf("  none\n")
		} else {
			fmt.Println()
			for status, n := range sum.CagesByStatus {
				fmt.Printf("  %-12s %d\n", status, n)
			}
		}
		fmt.Printf("Stocked fish: %d\n", sum.StockedFish)

		if len(sum.LowStockFeeds) > 0 {
			fmt.Println("\nLow stock feeds:")
			for _, f := range sum.LowStockFeeds {
				fmt.Printf("  %-20s %.1f kg of %.1f kg\n", f.Name, f.TotalStock, f.MaxCapacity)
			}
		}

		if w := sum.LatestWater; w != nil {
			fmt.Printf("\nLatest water reading (%s %s): temp=%.1f pH=%.1f O2=%.1f transparency=%.1f\n",
				w.Date, w.Time, w.Temperature, w.PH, w.Oxygen, w.Transparency)
		}

		if ls := a.Service().State().LastSync; ls != "" {
			fmt.Printf("\nLast sync: %s\n", ls)
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all farm data to a backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypt, _ := cmd.Flags().GetBool("encrypt")
		dir, _ := cmd.Flags().GetString("dir")

		a, err := newApp("Export")
		if err != nil {
			return err
		}
		defer a.Close()

		if dir == "" {
			dir = a.Config().Export.Dir
		}
		if dir == "" {
			dir = "."
		}

		var enc = a.Encryptor()
		if !encrypt {
			enc = nil
		} else if !enc.IsConfigured() {
			return fmt.Errorf("encryption keys not set up: run 'aquafarm keys init' first")
		}

		path, err := a.Service().ExportToFile(dir, enc)
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}

		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

// restore command
var restoreCmd = &cobra.Command{
	Use:   "restore FILENAME",
	Short: "Replace all farm data from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Restore")
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening backup: %w", err)
		}
		defer f.Close()

		var decryptCtx farm.DecryptionContext
		if strings.HasSuffix(args[0], ".age") {
			pass, err := readPassword("Passphrase for private key: ")
			if err != nil {
				return err
			}
			ctx, err := a.Encryptor().Unlock(pass)
			if err != nil {
				return fmt.Errorf("unlocking private key: %w", err)
			}
			decryptCtx = ctx
		}

		if err := a.Service().Restore(f, decryptCtx); err != nil {
			return fmt.Errorf("restoring: %w", err)
		}

		fmt.Println("Farm data restored.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	keysCmd.AddCommand(keysInitCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("encrypt", false, "Encrypt the backup with the configured public key")
	exportCmd.Flags().String("dir", "", "Directory to write the backup into")
	rootCmd.AddCommand(restoreCmd)
}
