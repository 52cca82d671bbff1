package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// line command
var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Manage cage lines",
}

var lineAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a new line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddLine")
		if err != nil {
			return err
		}
		defer a.Close()

		l, err := a.Service().AddLine(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added line %s (%s)\n", l.Name, l.ID)
		return nil
	},
}

var lineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListLines")
		if err != nil {
			return err
		}
		defer a.Close()

		lines := a.Service().ListLines()
		if len(lines) == 0 {
			fmt.Println("No lines registered.")
			return nil
		}
		for _, l := range lines {
			fmt.Printf("%-36s %s\n", l.ID, l.Name)
		}
		return nil
	},
}

var lineRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveLine")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemoveLine(args[0]); err != nil {
			return err
		}
		fmt.Println("Line removed.")
		return nil
	},
}

// batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage fish batches",
}

var batchAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a new batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		quantity, _ := cmd.Flags().GetInt("quantity")
		weight, _ := cmd.Flags().GetFloat64("unit-weight")

		a, err := newApp("AddBatch")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.Service().AddBatch(args[0], date, quantity, weight)
		if err != nil {
			return err
		}
		fmt.Printf("Added batch %s (%s)\n", b.Name, b.ID)
		return nil
	},
}

var batchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListBatches")
		if err != nil {
			return err
		}
		defer a.Close()

		batches := a.Service().ListBatches()
		if len(batches) == 0 {
			fmt.Println("No batches registered.")
			return nil
		}
		for _, b := range batches {
			fmt.Printf("%-36s %-20s %s  qty=%d  unit=%.1fg\n",
				b.ID, b.Name, b.SettlementDate, b.InitialQuantity, b.InitialUnitWeight)
		}
		return nil
	},
}

var batchRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveBatch")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemoveBatch(args[0]); err != nil {
			return err
		}
		fmt.Println("Batch removed.")
		return nil
	},
}

// feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Manage feed inventory",
}

var feedAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a new feed type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stock, _ := cmd.Flags().GetFloat64("stock")
		capacity, _ := cmd.Flags().GetFloat64("capacity")
		minPct, _ := cmd.Flags().GetFloat64("min-pct")

		a, err := newApp("AddFeedType")
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := a.Service().AddFeedType(args[0], stock, capacity, minPct)
		if err != nil {
			return err
		}
		fmt.Printf("Added feed type %s (%s)\n", f.Name, f.ID)
		return nil
	},
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feed types",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListFeedTypes")
		if err != nil {
			return err
		}
		defer a.Close()

		feeds := a.Service().ListFeedTypes()
		if len(feeds) == 0 {
			fmt.Println("No feed types registered.")
			return nil
		}
		for _, f := range feeds {
			low := ""
			if f.LowStock() {
				low = "  LOW"
			}
			fmt.Printf("%-36s %-20s %.1f / %.1f kg%s\n", f.ID, f.Name, f.TotalStock, f.MaxCapacity, low)
		}
		return nil
	},
}

var feedRestockCmd = &cobra.Command{
	Use:   "restock ID AMOUNT",
	Short: "Add stock to a feed type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloatArg(args[1], "AMOUNT")
		if err != nil {
			return err
		}

		a, err := newApp("RestockFeed")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RestockFeed(args[0], amount); err != nil {
			return err
		}
		fmt.Printf("Restocked %.1f kg\n", amount)
		return nil
	},
}

var feedRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a feed type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveFeedType")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemoveFeedType(args[0]); err != nil {
			return err
		}
		fmt.Println("Feed type removed.")
		return nil
	},
}

func init() {
	lineCmd.AddCommand(lineAddCmd)
	lineCmd.AddCommand(lineListCmd)
	lineCmd.AddCommand(lineRemoveCmd)

	batchAddCmd.Flags().String("date", "", "Settlement date (YYYY-MM-DD)")
	batchAddCmd.Flags().Int("quantity", 0, "Initial fish count")
	batchAddCmd.Flags().Float64("unit-weight", 0, "Initial unit weight in grams")
	batchCmd.AddCommand(batchAddCmd)
	batchCmd.AddCommand(batchListCmd)
	batchCmd.AddCommand(batchRemoveCmd)

	feedAddCmd.Flags().Float64("stock", 0, "Initial stock in kg")
	feedAddCmd.Flags().Float64("capacity", 0, "Maximum storage capacity in kg (default 1000)")
	feedAddCmd.Flags().Float64("min-pct", 0, "Low-stock threshold percentage (default 20)")
	feedCmd.AddCommand(feedAddCmd)
	feedCmd.AddCommand(feedListCmd)
	feedCmd.AddCommand(feedRestockCmd)
	feedCmd.AddCommand(feedRemoveCmd)

	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(feedCmd)
}
