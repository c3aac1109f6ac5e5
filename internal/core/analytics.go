package core

import (
	"fmt"
	"sort"
	"time"
)

// periodDays is the length of the rolling comparison window.
const periodDays = 30

type (
	// Summary is the two-period comparative overview for the dashboard.
	// Field names are part of the API contract.
	Summary struct {
		TotalDebits           float64           `json:"total_debits"`
		TotalCredits          float64           `json:"total_credits"`
		NetBalance            float64           `json:"net_balance"`
		DailyAverage          float64           `json:"daily_average"`
		PercentChangeCredits  float64           `json:"percent_change_credits"`
		PercentChangeDebits   float64           `json:"percent_change_debits"`
		PercentChangeBalance  float64           `json:"percent_change_balance"`
		PercentChangeDaily    float64           `json:"percent_change_daily"`
		HighestDebitDay       DayHighlight      `json:"highest_debit_day"`
		HighestCreditDay      DayHighlight      `json:"highest_credit_day"`
		HighestDebitCategory  CategoryHighlight `json:"highest_debit_category"`
		HighestCreditCategory CategoryHighlight `json:"highest_credit_category"`
	}

	// DayHighlight is the arg-max date for one transaction type. Date is
	// null when the period holds no matching transactions.
	DayHighlight struct {
		Date   *string `json:"date"`
		Amount float64 `json:"amount"`
	}

	// CategoryHighlight is the arg-max category for one transaction type.
	CategoryHighlight struct {
		Category *string `json:"category"`
		Amount   float64 `json:"amount"`
	}

	// TrendSelector picks which sides of the ledger a trend series covers.
	TrendSelector string

	// CategorySelector picks which sides a category breakdown covers.
	CategorySelector string

	// TrendDataset is one chart line/bar series aligned to TrendData.Labels.
	TrendDataset struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BackgroundColor string    `json:"backgroundColor"`
		BorderColor     string    `json:"borderColor"`
	}

	// TrendData is the per-date chart payload.
	TrendData struct {
		Labels   []string       `json:"labels"`
		Datasets []TrendDataset `json:"datasets"`
	}

	// CategoryDataset carries one value and one color per emitted label.
	CategoryDataset struct {
		Data            []float64 `json:"data"`
		BackgroundColor []string  `json:"backgroundColor"`
	}

	// CategoryData is the per-category chart payload.
	CategoryData struct {
		Labels   []string          `json:"labels"`
		Datasets []CategoryDataset `json:"datasets"`
	}
)

const (
	TrendHybrid TrendSelector = "hybrid"
	TrendCredit TrendSelector = "credit"
	TrendDebit  TrendSelector = "debit"

	CategoryAll    CategorySelector = "all"
	CategoryCredit CategorySelector = "credit"
	CategoryDebit  CategorySelector = "debit"
)

// ComputeSummary reduces the collection into a 30-day versus prior-30-day
// comparison evaluated at now. The boundary day 30 days back belongs to the
// current period only. The empty collection yields the fixed all-zero shape
// with null highlight fields.
func ComputeSummary(txs []Transaction, now time.Time) (Summary, error) {
	if len(txs) == 0 {
		return Summary{}, nil
	}

	currentStart := now.AddDate(0, 0, -periodDays)
	previousStart := currentStart.AddDate(0, 0, -periodDays)

	var curCredits, curDebits, prevCredits, prevDebits float64
	var current []Transaction
	for _, tx := range txs {
		if err := checkRow(tx); err != nil {
			return Summary{}, err
		}
		d := tx.Date.Time
		switch {
		case !d.Before(currentStart) && !d.After(now):
			current = append(current, tx)
			if tx.Type == Credit {
				curCredits += tx.Amount
			} else {
				curDebits += tx.Amount
			}
		case !d.Before(previousStart) && d.Before(currentStart):
			if tx.Type == Credit {
				prevCredits += tx.Amount
			} else {
				prevDebits += tx.Amount
			}
		}
	}

	curNet := curCredits - curDebits
	prevNet := prevCredits - prevDebits
	// Fixed divisor, not the count of days with activity.
	curDaily := curDebits / periodDays
	prevDaily := prevDebits / periodDays

	s := Summary{
		TotalDebits:          Round2(curDebits),
		TotalCredits:         Round2(curCredits),
		NetBalance:           Round2(curNet),
		DailyAverage:         Round2(curDaily),
		PercentChangeCredits: percentChange(curCredits, prevCredits),
		PercentChangeDebits:  percentChange(curDebits, prevDebits),
		PercentChangeBalance: percentChange(curNet, prevNet),
		PercentChangeDaily:   percentChange(curDaily, prevDaily),
	}

	dayDebits := newAccumulator()
	dayCredits := newAccumulator()
	catDebits := newAccumulator()
	catCredits := newAccumulator()
	for _, tx := range current {
		if tx.Type == Credit {
			dayCredits.add(tx.Date.String(), tx.Amount)
			catCredits.add(tx.Category, tx.Amount)
		} else {
			dayDebits.add(tx.Date.String(), tx.Amount)
			catDebits.add(tx.Category, tx.Amount)
		}
	}

	if key, amount, ok := dayDebits.max(); ok {
		s.HighestDebitDay = DayHighlight{Date: &key, Amount: Round2(amount)}
	}
	if key, amount, ok := dayCredits.max(); ok {
		s.HighestCreditDay = DayHighlight{Date: &key, Amount: Round2(amount)}
	}
	if key, amount, ok := catDebits.max(); ok {
		s.HighestDebitCategory = CategoryHighlight{Category: &key, Amount: Round2(amount)}
	}
	if key, amount, ok := catCredits.max(); ok {
		s.HighestCreditCategory = CategoryHighlight{Category: &key, Amount: Round2(amount)}
	}

	return s, nil
}

// ComputeTrend builds per-date summed series over the trailing window,
// inclusive on both ends. Only dates with at least one transaction appear
// as labels; labels ascend and never repeat.
func ComputeTrend(txs []Transaction, windowDays int, sel TrendSelector, now time.Time) (TrendData, error) {
	start := now.AddDate(0, 0, -windowDays)

	daily := map[string]*[2]float64{} // [credit, debit]
	for _, tx := range txs {
		if err := checkRow(tx); err != nil {
			return TrendData{}, err
		}
		d := tx.Date.Time
		if d.Before(start) || d.After(now) {
			continue
		}
		key := tx.Date.String()
		sums, ok := daily[key]
		if !ok {
			sums = &[2]float64{}
			daily[key] = sums
		}
		if tx.Type == Credit {
			sums[0] += tx.Amount
		} else {
			sums[1] += tx.Amount
		}
	}

	labels := make([]string, 0, len(daily))
	for key := range daily {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	data := TrendData{Labels: labels, Datasets: []TrendDataset{}}
	if sel == TrendHybrid || sel == TrendCredit {
		values := make([]float64, len(labels))
		for i, label := range labels {
			values[i] = daily[label][0]
		}
		data.Datasets = append(data.Datasets, TrendDataset{
			Label:           "Credits",
			Data:            values,
			BackgroundColor: CreditFillColor,
			BorderColor:     CreditBorderColor,
		})
	}
	if sel == TrendHybrid || sel == TrendDebit {
		values := make([]float64, len(labels))
		for i, label := range labels {
			values[i] = daily[label][1]
		}
		data.Datasets = append(data.Datasets, TrendDataset{
			Label:           "Debits",
			Data:            values,
			BackgroundColor: DebitFillColor,
			BorderColor:     DebitBorderColor,
		})
	}
	return data, nil
}

// ComputeCategoryBreakdown sums the trailing window by (type, category).
// Debit buckets come first, then credit buckets, each side in first-seen
// order; buckets with no transactions are never emitted.
func ComputeCategoryBreakdown(txs []Transaction, windowDays int, sel CategorySelector, now time.Time) (CategoryData, error) {
	start := now.AddDate(0, 0, -windowDays)

	debits := newAccumulator()
	credits := newAccumulator()
	for _, tx := range txs {
		if err := checkRow(tx); err != nil {
			return CategoryData{}, err
		}
		d := tx.Date.Time
		if d.Before(start) || d.After(now) {
			continue
		}
		if tx.Type == Credit {
			credits.add(tx.Category, tx.Amount)
		} else {
			debits.add(tx.Category, tx.Amount)
		}
	}

	data := CategoryData{
		Labels:   []string{},
		Datasets: []CategoryDataset{{Data: []float64{}, BackgroundColor: []string{}}},
	}
	if sel == CategoryAll || sel == CategoryDebit {
		for _, key := range debits.order {
			data.Labels = append(data.Labels, key)
			data.Datasets[0].Data = append(data.Datasets[0].Data, debits.totals[key])
			data.Datasets[0].BackgroundColor = append(data.Datasets[0].BackgroundColor, CategoryColor(Debit, key))
		}
	}
	if sel == CategoryAll || sel == CategoryCredit {
		for _, key := range credits.order {
			data.Labels = append(data.Labels, key)
			data.Datasets[0].Data = append(data.Datasets[0].Data, credits.totals[key])
			data.Datasets[0].BackgroundColor = append(data.Datasets[0].BackgroundColor, CategoryColor(Credit, key))
		}
	}
	return data, nil
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// checkRow rejects rows that slipped past input validation. Malformed data
// aborts the whole computation rather than being silently dropped.
func checkRow(tx Transaction) error {
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrInvalidDate)
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrInvalidAmount)
	}
	if !tx.Type.Valid() {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrInvalidType)
	}
	return nil
}

// accumulator keeps keyed running sums and remembers first-seen key order so
// max extraction and breakdown emission stay deterministic for a fixed input
// order.
type accumulator struct {
	totals map[string]float64
	order  []string
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]float64)}
}

func (a *accumulator) add(key string, amount float64) {
	if _, ok := a.totals[key]; !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] += amount
}

// max returns the first-seen key holding the largest sum.
func (a *accumulator) max() (string, float64, bool) {
	if len(a.order) == 0 {
		return "", 0, false
	}
	best := a.order[0]
	for _, key := range a.order[1:] {
		if a.totals[key] > a.totals[best] {
			best = key
		}
	}
	return best, a.totals[best], true
}
