package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/chynaenye/microinsurance-predictor/internal/application/dto"
	"github.com/chynaenye/microinsurance-predictor/internal/application/usecase"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/service"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/messaging"
)

func cmdAssess() *cli.Command {
	var beneficiaryID string
	var age int
	var gender string
	var region string
	var months int
	var claims int
	var denialRate int
	var visits int
	var distance int
	var balance int
	var premium int
	var format string

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Assess a single beneficiary and print the prediction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "beneficiary-id",
				Aliases:     []string{"b"},
				Usage:       "Beneficiary identifier (e.g., BEN001234)",
				Destination: &beneficiaryID,
			},
			&cli.IntFlag{
				Name:        "age",
				Usage:       "Age in years (18-80)",
				Value:       35,
				Destination: &age,
			},
			&cli.StringFlag{
				Name:        "gender",
				Usage:       "Gender (Male, Female)",
				Value:       "Male",
				Destination: &gender,
			},
			&cli.StringFlag{
				Name:        "region",
				Usage:       "Beneficiary region",
				Value:       "Lagos",
				Destination: &region,
			},
			&cli.IntFlag{
				Name:        "months-since-claim",
				Usage:       "Months since the last claim",
				Value:       6,
				Destination: &months,
			},
			&cli.IntFlag{
				Name:        "claims",
				Usage:       "Total claims filed",
				Value:       2,
				Destination: &claims,
			},
			&cli.IntFlag{
				Name:        "denial-rate",
				Usage:       "Claim denial rate in percent",
				Value:       10,
				Destination: &denialRate,
			},
			&cli.IntFlag{
				Name:        "visits",
				Usage:       "Clinic visits in the last 12 months",
				Value:       3,
				Destination: &visits,
			},
			&cli.IntFlag{
				Name:        "distance",
				Usage:       "Distance to the nearest clinic in km",
				Value:       15,
				Destination: &distance,
			},
			&cli.IntFlag{
				Name:        "balance",
				Usage:       "Average monthly balance in naira",
				Value:       5000,
				Destination: &balance,
			},
			&cli.IntFlag{
				Name:        "premium",
				Usage:       "Monthly premium in naira",
				Value:       1500,
				Destination: &premium,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"o"},
				Usage:       "Output format (text, json)",
				Value:       "text",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			// Operational logs go to stderr so stdout stays clean for the
			// rendered prediction.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			evaluate := usecase.NewEvaluateBeneficiary(
				service.NewRiskScorer(),
				service.NewExplainer(),
				service.NewRecommendationSelector(),
				messaging.NewLogPublisher(logger),
				logger,
			)

			req := dto.EvaluateBeneficiaryRequest{
				BeneficiaryID:        beneficiaryID,
				Gender:               gender,
				Region:               region,
				Age:                  age,
				MonthsSinceLastClaim: months,
				TotalClaimsFiled:     claims,
				ClaimDenialRatePct:   denialRate,
				ClinicVisits12Mo:     visits,
				DistanceToClinicKm:   distance,
				AvgMonthlyBalance:    int64(balance),
				MonthlyPremium:       int64(premium),
			}

			resp, err := evaluate.Execute(ctx, req)
			if err != nil {
				if errors.Is(err, model.ErrMissingBeneficiaryID) {
					renderGuard(os.Stderr)
					return errors.New("beneficiary ID is required")
				}
				return err
			}

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			case "text":
				renderAssessment(os.Stdout, resp)
				return nil
			default:
				return fmt.Errorf("unknown output format %q, want text or json", format)
			}
		},
	}
}
