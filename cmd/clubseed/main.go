// clubseed scrapes the campus club directory and seeds the database.
//
//	clubseed scrape --url https://ucmerced.presence.io/api/v1/organizations --out scraped_clubs.csv
//	clubseed seed --csv scraped_clubs.csv
//
// Scraping may be interrupted with Ctrl-C; rows collected so far are still
// written to the CSV.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bobcathub/internal/config"
	"bobcathub/internal/ingest"
	"bobcathub/internal/repository/mysql"
	"bobcathub/internal/scraper"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clubseed",
		Short:         "Scrape the campus club directory and seed the database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScrapeCmd(), newSeedCmd())
	return root
}

func newScrapeCmd() *cobra.Command {
	var url, out string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the paginated club listing into a CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := scraper.NewClient(url)
			records, err := client.ScrapeAll(ctx)

			// Persist whatever was collected, even after an interrupt or a
			// page failure.
			if len(records) > 0 {
				if werr := ingest.WriteCSV(out, records); werr != nil {
					return werr
				}
				log.Printf("saved %d clubs to %s", len(records), out)
			} else {
				log.Println("no data was collected")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&url, "url", "https://ucmerced.presence.io/api/v1/organizations", "club listing endpoint")
	cmd.Flags().StringVar(&out, "out", "scraped_clubs.csv", "output CSV path")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var csvPath, dsn string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert clubs from a CSV into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = config.Load().MySQLDSN
			}

			records, err := ingest.ReadCSV(csvPath)
			if err != nil {
				return err
			}
			log.Printf("found %d clubs, seeding database", len(records))

			db, err := mysql.Open(dsn)
			if err != nil {
				return err
			}
			if err := mysql.AutoMigrate(db); err != nil {
				return err
			}

			svc := ingest.NewService(&mysql.ClubRepository{DB: db})
			loaded, err := svc.UpsertRecords(cmd.Context(), records)
			if err != nil {
				return err
			}
			log.Printf("database seeded, %d clubs loaded", loaded)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "scraped_clubs.csv", "input CSV path")
	cmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN (defaults to MYSQL_DSN)")
	return cmd
}
