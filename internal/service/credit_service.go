package service

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/stemsi/credit-tally/internal/model"
	"github.com/stemsi/credit-tally/internal/validator"
)

type CreditService struct {
	validate *validator.Validator
	log      zerolog.Logger
}

func NewCreditService(validate *validator.Validator, log zerolog.Logger) *CreditService {
	return &CreditService{
		validate: validate,
		log:      log.With().Str("component", "credit_service").Logger(),
	}
}

// TotalCredits sums the credits of subjects. The first malformed record
// aborts the sum with a *MissingFieldError; a total past math.MaxInt
// fails with ErrCreditOverflow.
func (s *CreditService) TotalCredits(subjects []model.Subject) (int, error) {
	total := 0
	for i := range subjects {
		if err := s.check(i, &subjects[i]); err != nil {
			return 0, err
		}
		c := *subjects[i].Credits
		if c > math.MaxInt-total {
			return 0, fmt.Errorf("%w at subject #%d", ErrCreditOverflow, i)
		}
		total += c
	}

	s.log.Debug().Int("subjects", len(subjects)).Int("total", total).Msg("Credits summed")
	return total, nil
}

// Summarize computes the dashboard numbers for subjects.
func (s *CreditService) Summarize(subjects []model.Subject) (model.CreditSummary, error) {
	total, err := s.TotalCredits(subjects)
	if err != nil {
		return model.CreditSummary{}, err
	}
	return model.CreditSummary{
		TotalSubjects: len(subjects),
		TotalCredits:  total,
	}, nil
}

func (s *CreditService) check(idx int, sub *model.Subject) error {
	err := s.validate.Struct(sub)
	if err == nil {
		return nil
	}

	mfe := &MissingFieldError{Index: idx, Name: sub.Name, Field: "credits", Reason: err.Error()}
	if field, msg, ok := s.validate.FirstError(err); ok {
		mfe.Field = field
		mfe.Reason = msg
	}

	s.log.Warn().Int("index", idx).Str("field", mfe.Field).Msg("Malformed subject")
	return mfe
}
