package main

import (
	"fmt"

	"aquafarm/internal/model"

	"github.com/spf13/cobra"
)

// cage command
var cageCmd = &cobra.Command{
	Use:   "cage",
	Short: "Manage cages",
}

var cageAddCmd = &cobra.Command{
	Use:   "add NAME LINE_ID",
	Short: "Register a new cage on a line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetFloat64("length")
		width, _ := cmd.Flags().GetFloat64("width")
		depth, _ := cmd.Flags().GetFloat64("depth")
		capacity, _ := cmd.Flags().GetInt("capacity")

		a, err := newApp("AddCage")
		if err != nil {
			return err
		}
		defer a.Close()

		dims := model.Dimensions{Length: length, Width: width, Depth: depth}
		c, err := a.Service().AddCage(args[0], args[1], dims, capacity)
		if err != nil {
			return err
		}
		fmt.Printf("Added cage %s (%s)\n", c.Name, c.ID)
		return nil
	},
}

var cageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListCages")
		if err != nil {
			return err
		}
		defer a.Close()

		cages := a.Service().ListCages()
		if len(cages) == 0 {
			fmt.Println("No cages registered.")
			return nil
		}
		for _, c := range cages {
			extra := ""
			switch c.Status {
			case model.CageOccupied:
				extra = fmt.Sprintf("  batch=%s fish=%d since=%s", c.BatchID, c.InitialFishCount, c.SettlementDate)
			case model.CageMaintenance:
				extra = fmt.Sprintf("  %s to %s", c.MaintenanceStartDate, c.MaintenanceEndDate)
			}
			fmt.Printf("%-36s %-16s %-12s%s\n", c.ID, c.Name, c.Status, extra)
		}
		return nil
	},
}

var cageRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a cage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveCage")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemoveCage(args[0]); err != nil {
			return err
		}
		fmt.Println("Cage removed.")
		return nil
	},
}

var cageStockCmd = &cobra.Command{
	Use:   "stock CAGE_ID BATCH_ID FISH_COUNT",
	Short: "Stock an available cage with a batch",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")

		count, err := parseIntArg(args[2], "FISH_COUNT")
		if err != nil {
			return err
		}

		a, err := newApp("StockCage")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().StockCage(args[0], args[1], count, date); err != nil {
			return err
		}
		fmt.Printf("Cage stocked with %d fish\n", count)
		return nil
	},
}

var cageHarvestCmd = &cobra.Command{
	Use:   "harvest CAGE_ID",
	Short: "Harvest an occupied cage, returning it to available",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")

		a, err := newApp("HarvestCage")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().HarvestCage(args[0], date); err != nil {
			return err
		}
		fmt.Println("Cage harvested.")
		return nil
	},
}

var cageMaintainCmd = &cobra.Command{
	Use:   "maintain CAGE_ID",
	Short: "Take an available cage into maintenance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		done, _ := cmd.Flags().GetBool("done")

		a, err := newApp("Maintenance")
		if err != nil {
			return err
		}
		defer a.Close()

		if done {
			if err := a.Service().FinishMaintenance(args[0]); err != nil {
				return err
			}
			fmt.Println("Maintenance finished, cage available.")
			return nil
		}

		if err := a.Service().StartMaintenance(args[0], start, end); err != nil {
			return err
		}
		fmt.Println("Cage under maintenance.")
		return nil
	},
}

var cageCleanCmd = &cobra.Command{
	Use:   "clean CAGE_ID",
	Short: "Take an available cage into cleaning",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		done, _ := cmd.Flags().GetBool("done")

		a, err := newApp("Cleaning")
		if err != nil {
			return err
		}
		defer a.Close()

		if done {
			if err := a.Service().FinishCleaning(args[0]); err != nil {
				return err
			}
			fmt.Println("Cleaning finished, cage available.")
			return nil
		}

		if err := a.Service().StartCleaning(args[0]); err != nil {
			return err
		}
		fmt.Println("Cage under cleaning.")
		return nil
	},
}

func init() {
	cageAddCmd.Flags().Float64("length", 0, "Length in meters")
	cageAddCmd.Flags().Float64("width", 0, "Width in meters")
	cageAddCmd.Flags().Float64("depth", 0, "Depth in meters")
	cageAddCmd.Flags().Int("capacity", 0, "Stocking capacity in fish")

	cageStockCmd.Flags().String("date", "", "Settlement date (default: today)")
	cageHarvestCmd.Flags().String("date", "", "Harvest date (default: today)")

	cageMaintainCmd.Flags().String("start", "", "Maintenance start date")
	cageMaintainCmd.Flags().String("end", "", "Planned maintenance end date")
	cageMaintainCmd.Flags().Bool("done", false, "Finish maintenance instead of starting it")
	cageCleanCmd.Flags().Bool("done", false, "Finish cleaning instead of starting it")

	cageCmd.AddCommand(cageAddCmd)
	cageCmd.AddCommand(cageListCmd)
	cageCmd.AddCommand(cageRemoveCmd)
	cageCmd.AddCommand(cageStockCmd)
	cageCmd.AddCommand(cageHarvestCmd)
	cageCmd.AddCommand(cageMaintainCmd)
	cageCmd.AddCommand(cageCleanCmd)

	rootCmd.AddCommand(cageCmd)
}
