// tracker-report prints a terminal summary of the transaction history and
// can optionally render the dashboard charts to PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"ledgerd/internal/charts"
	"ledgerd/internal/core"
	"ledgerd/internal/storage"
)

func main() {
	var (
		dataFile = flag.String("data", "./data/transactions.json", "path to the transactions JSON file")
		days     = flag.Int("days", 30, "chart window size in days")
		chartDir = flag.String("charts", "", "directory to write trend.png and categories.png into (skipped when empty)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := run(*dataFile, *days, *chartDir); err != nil {
		fmt.Fprintln(os.Stderr, "tracker-report:", err)
		os.Exit(1)
	}
}

func run(dataFile string, days int, chartDir string) error {
	store, err := storage.NewJSONFileStore(dataFile)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	txs, err := store.Load(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	summary, err := core.ComputeSummary(txs, now)
	if err != nil {
		return err
	}

	fmt.Printf("Transactions: %d (file %s)\n\n", len(txs), dataFile)
	printSummary(summary)

	breakdown, err := core.ComputeCategoryBreakdown(txs, days, core.CategoryAll, now)
	if err != nil {
		return err
	}
	printBreakdown(breakdown, days)

	if chartDir != "" {
		if err := writeCharts(txs, days, chartDir, now); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(s core.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Last 30 Days", "Change"})
	table.Append([]string{"Total Credits", money(s.TotalCredits), percent(s.PercentChangeCredits)})
	table.Append([]string{"Total Debits", money(s.TotalDebits), percent(s.PercentChangeDebits)})
	table.Append([]string{"Net Balance", money(s.NetBalance), percent(s.PercentChangeBalance)})
	table.Append([]string{"Daily Average Spend", money(s.DailyAverage), percent(s.PercentChangeDaily)})
	table.Append([]string{"Highest Spend Day", highlightDay(s.HighestDebitDay), ""})
	table.Append([]string{"Highest Income Day", highlightDay(s.HighestCreditDay), ""})
	table.Append([]string{"Top Spend Category", highlightCategory(s.HighestDebitCategory), ""})
	table.Append([]string{"Top Income Category", highlightCategory(s.HighestCreditCategory), ""})
	table.Render()
	fmt.Println()
}

func printBreakdown(b core.CategoryData, days int) {
	if len(b.Labels) == 0 {
		fmt.Printf("No transactions in the last %d days.\n", days)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", fmt.Sprintf("Total (%dd)", days)})
	for i, label := range b.Labels {
		table.Append([]string{label, money(b.Datasets[0].Data[i])})
	}
	table.Render()
}

func writeCharts(txs []core.Transaction, days int, dir string, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	trend, err := core.ComputeTrend(txs, days, core.TrendHybrid, now)
	if err != nil {
		return err
	}
	if err := renderToFile(filepath.Join(dir, "trend.png"), func(f *os.File) error {
		return charts.RenderTrendPNG(f, trend)
	}); err != nil {
		return fmt.Errorf("render trend chart: %w", err)
	}

	breakdown, err := core.ComputeCategoryBreakdown(txs, days, core.CategoryAll, now)
	if err != nil {
		return err
	}
	if err := renderToFile(filepath.Join(dir, "categories.png"), func(f *os.File) error {
		return charts.RenderCategoryPNG(f, breakdown)
	}); err != nil {
		return fmt.Errorf("render category chart: %w", err)
	}

	fmt.Printf("Charts written to %s\n", dir)
	return nil
}

func renderToFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func highlightDay(d core.DayHighlight) string {
	if d.Date == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", *d.Date, money(d.Amount))
}

func highlightCategory(c core.CategoryHighlight) string {
	if c.Category == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", *c.Category, money(c.Amount))
}
