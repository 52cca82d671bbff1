package main

import (
	"fmt"

	"aquafarm/internal/model"

	"github.com/spf13/cobra"
)

// cloud command
var cloudCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Manage remote sync",
}

var cloudSetCmd = &cobra.Command{
	Use:   "set TYPE",
	Short: "Configure the remote store (s3 or filesystem)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &model.RemoteConfig{Type: args[0]}
		cfg.Bucket, _ = cmd.Flags().GetString("bucket")
		cfg.Prefix, _ = cmd.Flags().GetString("prefix")
		cfg.Region, _ = cmd.Flags().GetString("region")
		cfg.Endpoint, _ = cmd.Flags().GetString("endpoint")
		cfg.AccessKeyID, _ = cmd.Flags().GetString("access-key")
		cfg.PathStyle, _ = cmd.Flags().GetBool("path-style")
		cfg.Root, _ = cmd.Flags().GetString("root")

		switch cfg.Type {
		case "s3":
			if cfg.Bucket == "" {
				return fmt.Errorf("--bucket is required for type s3")
			}
			if cfg.AccessKeyID != "" {
				secret, err := readPassword("Secret access key: ")
				if err != nil {
					return err
				}
				cfg.SecretAccessKey = secret
			}
		case "filesystem":
			if cfg.Root == "" {
				return fmt.Errorf("--root is required for type filesystem")
			}
		default:
			return fmt.Errorf("unknown remote type %q (want s3 or filesystem)", cfg.Type)
		}

		a, err := newApp("SaveRemoteConfig")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().SaveRemoteConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("Remote sync configured (%s). Takes effect on next run.\n", cfg.Type)
		return nil
	},
}

var cloudShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the remote sync configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShowRemoteConfig")
		if err != nil {
			return err
		}
		defer a.Close()

		cfg, err := a.Service().RemoteConfig()
		if err != nil {
			return err
		}
		if cfg == nil {
			fmt.Println("Remote sync is not configured.")
			return nil
		}

		fmt.Printf("Type: %s\n", cfg.Type)
		switch cfg.Type {
		case "s3":
			fmt.Printf("Bucket:   %s\n", cfg.Bucket)
			fmt.Printf("Prefix:   %s\n", cfg.Prefix)
			fmt.Printf("Region:   %s\n", cfg.Region)
			if cfg.Endpoint != "" {
				fmt.Printf("Endpoint: %s\n", cfg.Endpoint)
			}
		case "filesystem":
			fmt.Printf("Root: %s\n", cfg.Root)
		}
		return nil
	},
}

var cloudClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Disable remote sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ClearRemoteConfig")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ClearRemoteConfig(); err != nil {
			return err
		}
		fmt.Println("Remote sync disabled.")
		return nil
	},
}

var cloudVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe the configured remote store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("VerifyRemote")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().VerifyRemote(); err != nil {
			return fmt.Errorf("remote verification failed: %w", err)
		}
		fmt.Println("Remote store is reachable.")
		return nil
	},
}

var cloudSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local data to the remote store now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SyncNow")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().SyncNow(); err != nil {
			return err
		}
		fmt.Println("Synced.")
		return nil
	},
}

func init() {
	cloudSetCmd.Flags().String("bucket", "", "S3 bucket name")
	cloudSetCmd.Flags().String("prefix", "", "Key prefix within the bucket")
	cloudSetCmd.Flags().String("region", "", "AWS region (default us-east-1)")
	cloudSetCmd.Flags().String("endpoint", "", "Custom S3 endpoint (MinIO etc.)")
	cloudSetCmd.Flags().String("access-key", "", "Access key ID (secret is prompted)")
	cloudSetCmd.Flags().Bool("path-style", false, "Use path-style S3 addressing")
	cloudSetCmd.Flags().String("root", "", "Root directory for a filesystem remote")

	cloudCmd.AddCommand(cloudSetCmd)
	cloudCmd.AddCommand(cloudShowCmd)
	cloudCmd.AddCommand(cloudClearCmd)
	cloudCmd.AddCommand(cloudVerifyCmd)
	cloudCmd.AddCommand(cloudSyncCmd)

	rootCmd.AddCommand(cloudCmd)
}
