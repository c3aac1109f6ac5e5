package core

import (
	"sort"
	"testing"
	"time"
)

func tx(date string, tt TxType, category string, amount float64) Transaction {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		ID:          date + "-" + string(tt) + "-" + category,
		Date:        d,
		Description: "test",
		Amount:      amount,
		Category:    category,
		Type:        tt,
		Timestamp:   d.Time,
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	s, err := ComputeSummary(nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.HighestDebitDay.Date != nil || s.HighestCreditCategory.Category != nil {
		t.Fatalf("expected null highlights")
	}
}

func TestComputeSummaryScenario(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-01-01", Credit, "Salary", 1000),
		tx("2024-01-01", Debit, "Food & Dining", 400),
	}
	s, err := ComputeSummary(txs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalCredits != 1000 || s.TotalDebits != 400 {
		t.Fatalf("totals: %+v", s)
	}
	if s.NetBalance != 600 {
		t.Fatalf("net: %v", s.NetBalance)
	}
	if s.DailyAverage != 13.33 {
		t.Fatalf("daily average: %v", s.DailyAverage)
	}
	if s.HighestDebitDay.Date == nil || *s.HighestDebitDay.Date != "2024-01-01" || s.HighestDebitDay.Amount != 400 {
		t.Fatalf("highest debit day: %+v", s.HighestDebitDay)
	}
	if s.HighestCreditCategory.Category == nil || *s.HighestCreditCategory.Category != "Salary" {
		t.Fatalf("highest credit category: %+v", s.HighestCreditCategory)
	}
}

func TestComputeSummaryNetIdentity(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-06-29", Credit, "Salary", 1234.56),
		tx("2024-06-28", Credit, "Freelance", 0.07),
		tx("2024-06-27", Debit, "Transport", 99.99),
		tx("2024-06-26", Debit, "Health", 3.14),
	}
	s, err := ComputeSummary(txs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Round2(s.TotalCredits - s.TotalDebits); got != s.NetBalance {
		t.Fatalf("net identity broken: %v - %v != %v", s.TotalCredits, s.TotalDebits, s.NetBalance)
	}
}

func TestComputeSummaryPeriodBoundaries(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-03-01", Debit, "Transport", 10), // now-30d, current period
		tx("2024-02-29", Debit, "Transport", 20), // previous period
		tx("2024-01-31", Debit, "Transport", 40), // previous period lower bound
		tx("2024-01-30", Debit, "Transport", 80), // outside both
	}
	s, err := ComputeSummary(txs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalDebits != 10 {
		t.Fatalf("current debits: %v", s.TotalDebits)
	}
	// previous = 60, current = 10 -> (10-60)/60*100 = -83.3
	if s.PercentChangeDebits != -83.3 {
		t.Fatalf("percent change debits: %v", s.PercentChangeDebits)
	}
}

func TestPercentChangeZeroPrevious(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-03-10", Credit, "Salary", 500),
	}
	s, err := ComputeSummary(txs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A swing from zero reports 0%, not infinity.
	if s.PercentChangeCredits != 0 || s.PercentChangeBalance != 0 || s.PercentChangeDaily != 0 {
		t.Fatalf("expected zero percent changes, got %+v", s)
	}
}

func TestComputeSummaryTieBreak(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-03-10", Debit, "Transport", 50),
		tx("2024-03-11", Debit, "Shopping", 50),
	}
	s, err := ComputeSummary(txs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First-seen maximum wins on ties.
	if *s.HighestDebitCategory.Category != "Transport" {
		t.Fatalf("tie break: %v", *s.HighestDebitCategory.Category)
	}
	if *s.HighestDebitDay.Date != "2024-03-10" {
		t.Fatalf("tie break day: %v", *s.HighestDebitDay.Date)
	}
}

func TestComputeSummaryRejectsCorruptRow(t *testing.T) {
	now := time.Now()
	bad := tx("2024-01-01", Debit, "Transport", 10)
	bad.Amount = -1
	if _, err := ComputeSummary([]Transaction{bad}, now); err == nil {
		t.Fatalf("expected error for non-positive stored amount")
	}
	bad = tx("2024-01-01", Debit, "Transport", 10)
	bad.Date = Date{}
	if _, err := ComputeSummary([]Transaction{bad}, now); err == nil {
		t.Fatalf("expected error for zero date")
	}
}

func TestComputeTrend(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-05-18", Debit, "Transport", 30),
		tx("2024-05-15", Credit, "Salary", 100),
		tx("2024-05-18", Credit, "Freelance", 70),
		tx("2024-02-01", Debit, "Transport", 999), // outside window
	}
	data, err := ComputeTrend(txs, 30, TrendHybrid, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Labels) != 2 {
		t.Fatalf("labels: %v", data.Labels)
	}
	if !sort.StringsAreSorted(data.Labels) {
		t.Fatalf("labels not ascending: %v", data.Labels)
	}
	for i, label := range data.Labels {
		d, err := ParseDate(label)
		if err != nil {
			t.Fatalf("label %d unparsable: %v", i, err)
		}
		if d.Before(now.AddDate(0, 0, -30)) || d.After(now) {
			t.Fatalf("label %s outside window", label)
		}
		if i > 0 && label == data.Labels[i-1] {
			t.Fatalf("duplicate label %s", label)
		}
	}
	if len(data.Datasets) != 2 {
		t.Fatalf("datasets: %d", len(data.Datasets))
	}
	credits, debits := data.Datasets[0], data.Datasets[1]
	if credits.Label != "Credits" || debits.Label != "Debits" {
		t.Fatalf("dataset order: %s, %s", credits.Label, debits.Label)
	}
	// 2024-05-15 then 2024-05-18
	if credits.Data[0] != 100 || credits.Data[1] != 70 {
		t.Fatalf("credit values: %v", credits.Data)
	}
	if debits.Data[0] != 0 || debits.Data[1] != 30 {
		t.Fatalf("debit values: %v", debits.Data)
	}
}

func TestComputeTrendSelector(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-05-18", Debit, "Transport", 30),
		tx("2024-05-15", Credit, "Salary", 100),
	}
	for i, tc := range []struct {
		sel   TrendSelector
		want  int
		first string
	}{
		{TrendHybrid, 2, "Credits"},
		{TrendCredit, 1, "Credits"},
		{TrendDebit, 1, "Debits"},
	} {
		data, err := ComputeTrend(txs, 30, tc.sel, now)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if len(data.Datasets) != tc.want || data.Datasets[0].Label != tc.first {
			t.Fatalf("case %d: got %d datasets, first %q", i, len(data.Datasets), data.Datasets[0].Label)
		}
	}
}

func TestComputeCategoryBreakdown(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-05-18", Credit, "Salary", 100),
		tx("2024-05-17", Debit, "Transport", 30),
		tx("2024-05-16", Debit, "Health", 20),
		tx("2024-05-15", Debit, "Transport", 5),
		tx("2023-01-01", Debit, "Shopping", 999), // outside window
	}
	data, err := ComputeCategoryBreakdown(txs, 30, CategoryAll, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Transport", "Health", "Salary"}
	if len(data.Labels) != len(want) {
		t.Fatalf("labels: %v", data.Labels)
	}
	for i := range want {
		if data.Labels[i] != want[i] {
			t.Fatalf("label order: %v", data.Labels)
		}
	}
	ds := data.Datasets[0]
	if ds.Data[0] != 35 || ds.Data[1] != 20 || ds.Data[2] != 100 {
		t.Fatalf("values: %v", ds.Data)
	}
	if ds.BackgroundColor[0] != CategoryColor(Debit, "Transport") {
		t.Fatalf("colors: %v", ds.BackgroundColor)
	}

	debitOnly, err := ComputeCategoryBreakdown(txs, 30, CategoryDebit, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debitOnly.Labels) != 2 {
		t.Fatalf("debit-only labels: %v", debitOnly.Labels)
	}
	for _, label := range debitOnly.Labels {
		if label == "Salary" {
			t.Fatalf("credit category leaked into debit-only breakdown")
		}
	}
}

func TestComputeCategoryBreakdownNoEmptyBuckets(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	data, err := ComputeCategoryBreakdown(nil, 30, CategoryAll, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Labels) != 0 || len(data.Datasets[0].Data) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", data)
	}
}
