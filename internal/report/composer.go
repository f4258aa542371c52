package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finlens/internal/amqp"
	"finlens/internal/core"
	"finlens/internal/ledger"
	"finlens/internal/market"

	"golang.org/x/sync/errgroup"
)

// Report kinds as published in report-written events.
const (
	KindHome     = "home"
	KindSpending = "category_spending"
	KindCashback = "cashback"
	KindSearch   = "search"
)

type (
	// RatesProvider and StocksProvider mirror the market clients so tests
	// can stub the network away.
	RatesProvider interface {
		Rates(ctx context.Context, apiKey string) []market.Rate
	}
	StocksProvider interface {
		Prices(ctx context.Context, apiKey string, symbols []string) []market.StockPrice
	}
	// EventPublisher announces persisted reports. May be nil.
	EventPublisher interface {
		PublishReportWritten(ctx context.Context, msg *amqp.ReportWrittenMessage) error
	}
)

// Composer orchestrates the analytical engine over a record source and
// assembles named report payloads. All analysis is pure given the loaded
// snapshot; the injected collaborators isolate every piece of I/O.
type Composer struct {
	source ledger.RecordSource
	rates  RatesProvider
	stocks StocksProvider
	sink   Sink
	events EventPublisher

	ratesAPIKey     string
	stocksAPIKey    string
	settingsPath    string
	cashbackExclude []string

	now func() time.Time
}

type Options struct {
	Source ledger.RecordSource
	Rates  RatesProvider
	Stocks StocksProvider
	Sink   Sink
	Events EventPublisher

	RatesAPIKey     string
	StocksAPIKey    string
	SettingsPath    string
	CashbackExclude []string

	// Now overrides the clock used for the home greeting (tests).
	Now func() time.Time
}

func NewComposer(opts Options) *Composer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Composer{
		source:          opts.Source,
		rates:           opts.Rates,
		stocks:          opts.Stocks,
		sink:            opts.Sink,
		events:          opts.Events,
		ratesAPIKey:     opts.RatesAPIKey,
		stocksAPIKey:    opts.StocksAPIKey,
		settingsPath:    opts.SettingsPath,
		cashbackExclude: opts.CashbackExclude,
		now:             now,
	}
}

// Home builds the composite home report for the month-to-anchor window:
// greeting, per-card summaries, top-5 transactions by payment amount, plus
// currency rates and stock prices fetched concurrently. Missing API keys are
// a hard failure; a failing lookup degrades to an empty list instead.
func (c *Composer) Home(ctx context.Context, anchor time.Time) (HomeReport, error) {
	if c.ratesAPIKey == "" {
		return HomeReport{}, fmt.Errorf("%w: EXCHANGE_RATES_API_KEY", core.ErrMissingCredential)
	}
	if c.stocksAPIKey == "" {
		return HomeReport{}, fmt.Errorf("%w: ALPHA_VANTAGE_API_KEY", core.ErrMissingCredential)
	}

	settings, err := LoadUserSettings(c.settingsPath)
	if err != nil {
		return HomeReport{}, err
	}

	records, err := c.source.Load(ctx)
	if err != nil {
		return HomeReport{}, fmt.Errorf("load records: %w", err)
	}

	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	windowed := core.FilterWindow(records, monthStart, anchor, true)

	var (
		rates  []market.Rate
		stocks []market.StockPrice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rates = c.rates.Rates(gctx, c.ratesAPIKey)
		return nil
	})
	g.Go(func() error {
		stocks = c.stocks.Prices(gctx, c.stocksAPIKey, settings.TrackedSymbols)
		return nil
	})
	// Lookups never fail the group; they degrade internally.
	_ = g.Wait()

	cards := make([]Card, 0)
	for _, summary := range core.SummarizeCards(windowed) {
		cards = append(cards, newCard(summary))
	}
	top := make([]TopTransaction, 0)
	for _, t := range core.TopByPayment(windowed, topTransactionsLimit) {
		top = append(top, newTopTransaction(t))
	}

	return HomeReport{
		Greeting:        core.Greeting(c.now()),
		Cards:           cards,
		TopTransactions: top,
		CurrencyRates:   rates,
		StockPrices:     stocks,
	}, nil
}

// SpendingByCategory reports the signed 90-day spend for one category.
// A bad calendar date is a hard failure; zero matches is a zero total.
func (c *Composer) SpendingByCategory(ctx context.Context, category string, year, month, day int) (SpendingReport, error) {
	anchor, err := core.NewAnchorDate(year, month, day)
	if err != nil {
		return SpendingReport{}, err
	}

	records, err := c.source.Load(ctx)
	if err != nil {
		return SpendingReport{}, fmt.Errorf("load records: %w", err)
	}

	total := core.SpendingByCategory(records, category, anchor)
	slog.InfoContext(ctx, "Composed category spending report",
		"category", category,
		"total", total.String(),
		"date", formatAnchor(anchor))

	return SpendingReport{
		Category:      category,
		TotalSpending: total.InexactFloat64(),
		Date:          formatAnchor(anchor),
	}, nil
}

// CashbackCategories ranks cashback for one calendar month. A source failure
// comes back as the {"error": ...} payload so the boundary stays
// JSON-serializable; an invalid month is a hard failure.
func (c *Composer) CashbackCategories(ctx context.Context, year, month int) (any, error) {
	if _, err := core.NewAnchorDate(year, month, 1); err != nil {
		return nil, err
	}

	records, err := c.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Record source unavailable for cashback analysis", "error", err)
		return ErrorPayload{Error: err.Error()}, nil
	}

	ranking := CashbackReport(core.CashbackByCategory(records, year, month, c.cashbackExclude))
	slog.InfoContext(ctx, "Composed cashback report",
		"year", year,
		"month", month,
		"categories", len(ranking))
	return ranking, nil
}

// Search runs the free-text search over the full record set, date-filtered
// by nothing. No match yields the explicit message payload; a source failure
// yields the error payload.
func (c *Composer) Search(ctx context.Context, query string) (any, error) {
	records, err := c.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Record source unavailable for search", "error", err)
		return ErrorPayload{Error: err.Error()}, nil
	}

	matches := core.SearchTransactions(records, query)
	slog.InfoContext(ctx, "Searched transactions", "query", query, "matches", len(matches))
	if len(matches) == 0 {
		return NoResult{Message: noResultMessage}, nil
	}

	payload := make([]TransactionPayload, 0, len(matches))
	for _, t := range matches {
		payload = append(payload, newTransactionPayload(t))
	}
	return SearchReport{Transactions: payload}, nil
}

// WriteReport persists a composed payload through the sink and, when an
// event publisher is wired, announces the write. Composition stays pure;
// persistence happens only here.
func (c *Composer) WriteReport(ctx context.Context, name, kind string, payload any) error {
	if c.sink == nil {
		return fmt.Errorf("no report sink configured")
	}
	if err := c.sink.Write(name, payload); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}
	slog.InfoContext(ctx, "Report written", "report", name, "kind", kind)

	if c.events != nil {
		if err := c.events.PublishReportWritten(ctx, amqp.NewReportWrittenMessage(name, kind)); err != nil {
			// The report is on disk; a lost event only skips the audit row.
			slog.ErrorContext(ctx, "Failed to publish report event", "report", name, "error", err)
		}
	}
	return nil
}
