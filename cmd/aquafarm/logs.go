package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record daily farm events",
}

var logFeedingCmd = &cobra.Command{
	Use:   "feeding CAGE_ID FEED_ID AMOUNT",
	Short: "Record a feeding, decrementing feed stock",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, _ := cmd.Flags().GetString("time")

		amount, err := parseFloatArg(args[2], "AMOUNT")
		if err != nil {
			return err
		}

		a, err := newApp("RecordFeeding")
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Service().RecordFeeding(args[0], args[1], amount, ts)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded feeding of %.1f kg at %s\n", entry.Amount, entry.Timestamp)
		return nil
	},
}

var logMortalityCmd = &cobra.Command{
	Use:   "mortality CAGE_ID COUNT",
	Short: "Record fish deaths in a cage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")

		count, err := parseIntArg(args[1], "COUNT")
		if err != nil {
			return err
		}

		a, err := newApp("RecordMortality")
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Service().RecordMortality(args[0], count, date)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %d deaths on %s\n", entry.Count, entry.Date)
		return nil
	},
}

var logBiometryCmd = &cobra.Command{
	Use:   "biometry CAGE_ID AVG_WEIGHT",
	Short: "Record an average-weight sampling",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")

		weight, err := parseFloatArg(args[1], "AVG_WEIGHT")
		if err != nil {
			return err
		}

		a, err := newApp("RecordBiometry")
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Service().RecordBiometry(args[0], weight, date)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded average weight %.1fg on %s\n", entry.AverageWeight, entry.Date)
		return nil
	},
}

var logWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Record a water quality measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, _ := cmd.Flags().GetFloat64("temp")
		ph, _ := cmd.Flags().GetFloat64("ph")
		oxygen, _ := cmd.Flags().GetFloat64("oxygen")
		transparency, _ := cmd.Flags().GetFloat64("transparency")
		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")

		a, err := newApp("RecordWater")
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Service().RecordWater(temp, ph, oxygen, transparency, date, timeOfDay)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded water reading on %s %s\n", entry.Date, entry.Time)
		return nil
	},
}

func init() {
	logFeedingCmd.Flags().String("time", "", "Timestamp (default: now)")
	logMortalityCmd.Flags().String("date", "", "Date (default: today)")
	logBiometryCmd.Flags().String("date", "", "Date (default: today)")

	logWaterCmd.Flags().Float64("temp", 0, "Water temperature in °C")
	logWaterCmd.Flags().Float64("ph", 0, "pH")
	logWaterCmd.Flags().Float64("oxygen", 0, "Dissolved oxygen in mg/L")
	logWaterCmd.Flags().Float64("transparency", 0, "Transparency in cm")
	logWaterCmd.Flags().String("date", "", "Date (default: today)")
	logWaterCmd.Flags().String("time", "", "Time of day (default: now)")

	logCmd.AddCommand(logFeedingCmd)
	logCmd.AddCommand(logMortalityCmd)
	logCmd.AddCommand(logBiometryCmd)
	logCmd.AddCommand(logWaterCmd)

	rootCmd.AddCommand(logCmd)
}
