package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/gigurra/subscription-calendar/internal"
)

type Params struct {
	File     string `descr:"Path to the subscription file (may carry a source prefix, e.g. csv:subs.txt)" positional:"true" default:""`
	Source   string `descr:"Source type when the file extension is ambiguous" alts:"xlsx,csv,simple-json" default:""`
	Month    int    `descr:"Displayed month (1-12; 0 = current month)" default:"0"`
	Year     int    `descr:"Displayed year (0 = current year)" default:"0"`
	Locale   string `descr:"IETF locale tag for date parsing and calendar conventions (e.g. de-AT, en-US)" default:""`
	Currency string `descr:"Display currency override (code or symbol)" default:""`
	Output   string `descr:"Output format" alts:"table,json" strict:"true" default:"table"`
	Config   string `descr:"Path to config file" default:""`
	Sheets   bool   `descr:"Fetch subscriptions from the configured Google Sheet" default:"false"`
	Demo     bool   `descr:"Use built-in demo subscriptions" default:"false"`
}

func main() {
	boa.NewCmdT[Params]("subscription-calendar").
		WithShort("Render a monthly calendar of recurring subscription charges").
		WithLong("Loads recurring subscription records from a spreadsheet-like source (XLSX, CSV, JSON or Google Sheets) and renders a locale-aware monthly calendar showing when each subscription charges, the month's totals, and how spend trends across months.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	cfg, err := internal.LoadConfigOrDefault(params.Config)
	if err != nil {
		return err
	}

	locale := resolveLocale(params, cfg)
	if err := internal.ValidateLocale(locale); err != nil {
		return err
	}

	now := time.Now()
	subs, err := loadSubscriptions(params, cfg, locale, now)
	if err != nil {
		return err
	}

	month, year, err := resolveMonth(params, now)
	if err != nil {
		return err
	}

	currency := params.Currency
	if currency == "" {
		currency = cfg.Currency
	}
	opts := internal.OutputOptions{
		Locale:   locale,
		Currency: internal.DisplayCurrency(subs, currency, locale),
	}

	if params.Output == "json" {
		return internal.PrintJSON(os.Stdout, subs, month, year, opts, now)
	}

	internal.RenderCalendar(os.Stdout, subs, month, year, opts, now)
	internal.RenderMonthlySummary(os.Stdout, subs, month, year, opts)
	internal.RenderTrend(os.Stdout, subs, month, year, opts)
	internal.RenderSubscriptionDetails(os.Stdout, subs, opts, now)
	return nil
}

// resolveLocale picks the locale in priority order: flag, config file,
// OS-level locale, en-US.
func resolveLocale(params *Params, cfg *internal.Config) string {
	if params.Locale != "" {
		return params.Locale
	}
	if cfg.Locale != "" {
		return cfg.Locale
	}
	if sys := internal.SystemLocale(); sys != "" {
		return sys
	}
	return "en-US"
}

func resolveMonth(params *Params, now time.Time) (time.Month, int, error) {
	month := now.Month()
	year := now.Year()
	if params.Month != 0 {
		if params.Month < 1 || params.Month > 12 {
			return 0, 0, fmt.Errorf("invalid month %d (must be 1-12)", params.Month)
		}
		month = time.Month(params.Month)
	}
	if params.Year != 0 {
		if params.Year < 0 {
			return 0, 0, fmt.Errorf("invalid year %d", params.Year)
		}
		year = params.Year
	}
	return month, year, nil
}

func loadSubscriptions(params *Params, cfg *internal.Config, locale string, now time.Time) ([]internal.Subscription, error) {
	if params.Demo || cfg.Demo {
		return internal.DemoSubscriptions(), nil
	}

	ing := internal.Ingestor{Locale: locale, Now: now}

	if params.Sheets {
		client, err := internal.NewSheetsClient(cfg.SpreadsheetID, cfg.APIKey)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return client.FetchSubscriptions(ctx, ing)
	}

	if params.File == "" {
		fmt.Fprintln(os.Stderr, "No source given, using demo subscriptions (see --help for sources)")
		return internal.DemoSubscriptions(), nil
	}

	format, path := internal.ParseFileArg(params.File)
	if format == "" {
		format = params.Source
	}
	if format == "" {
		format = cfg.Source
	}
	if format == "" {
		detected, ok := internal.DetectSource(path)
		if !ok {
			return nil, fmt.Errorf("cannot determine source type for %s (use --source or a source prefix)", path)
		}
		format = detected
	}

	parser, err := internal.GetParser(format)
	if err != nil {
		return nil, err
	}
	return parser.Parse(path, ing)
}
