package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stemsi/credit-tally/internal/catalog"
	"github.com/stemsi/credit-tally/internal/config"
	"github.com/stemsi/credit-tally/internal/logger"
	"github.com/stemsi/credit-tally/internal/model"
	"github.com/stemsi/credit-tally/internal/service"
	"github.com/stemsi/credit-tally/internal/validator"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	creditService := service.NewCreditService(validator.New(), log)

	if err := run(os.Stdout, creditService, catalog.Timetable(), log); err != nil {
		log.Fatal().Err(err).Msg("Failed to total credits")
	}
}

// run writes the credit total of subjects to out. Nothing is written
// unless every subject is well formed.
func run(out io.Writer, svc *service.CreditService, subjects []model.Subject, log zerolog.Logger) error {
	summary, err := svc.Summarize(subjects)
	if err != nil {
		return err
	}
	log.Debug().
		Int("subjects", summary.TotalSubjects).
		Int("credits", summary.TotalCredits).
		Msg("Timetable summary")

	_, err = fmt.Fprintf(out, "Total Credits: %d\n", summary.TotalCredits)
	return err
}
