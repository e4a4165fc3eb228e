package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"bobcathub/internal/model"
	"bobcathub/internal/repository/mysql"
)

// ClubRecord is the tabular row the scraper produces and the seeder
// consumes. member_count stays a string until seeding; the directory emits
// values like "11", "11.0" or "".
type ClubRecord struct {
	Name        string
	Category    string
	MeetingTime string
	Location    string
	MemberCount string
	Description string
}

// Members parses the raw count leniently; anything unparseable is 0.
func (r ClubRecord) Members() int {
	s := strings.TrimSpace(r.MemberCount)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

type Service struct {
	clubs *mysql.ClubRepository
}

func NewService(clubs *mysql.ClubRepository) *Service {
	return &Service{clubs: clubs}
}

// UpsertRecords loads scraped rows into the club table. Rows are deduped by
// name, ingested clubs are auto-verified, and a bad row is logged and
// skipped rather than aborting the batch.
func (s *Service) UpsertRecords(ctx context.Context, records []ClubRecord) (int, error) {
	seen := make(map[string]struct{}, len(records))
	loaded := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return loaded, err
		}
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		club := &model.Club{
			Name:        name,
			Category:    rec.Category,
			Description: rec.Description,
			MeetingTime: rec.MeetingTime,
			Location:    rec.Location,
			MemberCount: rec.Members(),
			Verified:    true,
		}
		if err := s.clubs.Upsert(club); err != nil {
			log.Printf("seed: upsert %q: %v", name, err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

var csvHeader = []string{"name", "category", "meeting_time", "location", "member_count", "description"}

func WriteCSV(path string, records []ClubRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name, r.Category, r.MeetingTime, r.Location, r.MemberCount, r.Description}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func ReadCSV(path string) ([]ClubRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	records := make([]ClubRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(csvHeader) {
			continue
		}
		records = append(records, ClubRecord{
			Name:        row[0],
			Category:    row[1],
			MeetingTime: row[2],
			Location:    row[3],
			MemberCount: row[4],
			Description: row[5],
		})
	}
	return records, nil
}
