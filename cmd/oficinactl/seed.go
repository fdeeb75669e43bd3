package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"oficina/internal/adapter/persistence/repository"
	"oficina/internal/domain/entities"
	"oficina/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fixture is the YAML document accepted by `oficinactl seed`.
type fixture struct {
	MonthlyGoal *float64       `yaml:"monthly_goal"`
	Orders      []fixtureOrder `yaml:"orders"`
}

type fixtureOrder struct {
	Client struct {
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
		Email string `yaml:"email"`
	} `yaml:"client"`
	Vehicle struct {
		Plate string `yaml:"plate"`
		Brand string `yaml:"brand"`
		Model string `yaml:"model"`
		Year  int    `yaml:"year"`
	} `yaml:"vehicle"`
	ProblemDescription string        `yaml:"problem_description"`
	MechanicID         string        `yaml:"mechanic_id"`
	Total              *float64      `yaml:"total"`
	DueInDays          *int          `yaml:"due_in_days"`
	Status             string        `yaml:"status"`
	Items              []fixtureItem `yaml:"items"`
}

type fixtureItem struct {
	Description string   `yaml:"description"`
	TotalPrice  *float64 `yaml:"total_price"`
	Quantidade  int      `yaml:"quantidade"`
	Status      string   `yaml:"status"`
}

func decodeFixture(r io.Reader) (fixture, error) {
	var f fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

func (o fixtureOrder) toInput(now time.Time) usecase.IntakeInput {
	in := usecase.IntakeInput{
		ClientName:         o.Client.Name,
		ClientPhone:        o.Client.Phone,
		ClientEmail:        o.Client.Email,
		Plate:              o.Vehicle.Plate,
		Brand:              o.Vehicle.Brand,
		Model:              o.Vehicle.Model,
		Year:               o.Vehicle.Year,
		ProblemDescription: o.ProblemDescription,
		MechanicID:         o.MechanicID,
		Total:              o.Total,
	}
	if o.DueInDays != nil {
		due := now.AddDate(0, 0, *o.DueInDays)
		in.EstimatedCompletion = &due
	}
	for _, it := range o.Items {
		qty := it.Quantidade
		if qty <= 0 {
			qty = 1
		}
		in.Items = append(in.Items, usecase.IntakeItem{Description: it.Description, TotalPrice: it.TotalPrice, Quantidade: qty})
	}
	return in
}

type seedReport struct {
	Orders  int
	GoalSet bool
}

// seed creates every fixture order through the intake flow, then applies
// the fixture's item decisions and status.
func seed(ctx context.Context, s *repository.Storage, f fixture, now time.Time) (seedReport, error) {
	var report seedReport
	if f.MonthlyGoal != nil {
		if err := s.Settings.SetValue(ctx, usecase.MonthlyGoalKey, strconv.FormatFloat(*f.MonthlyGoal, 'f', -1, 64)); err != nil {
			return report, fmt.Errorf("set monthly goal: %w", err)
		}
		report.GoalSet = true
	}

	intake := usecase.NewIntakeUseCase(s.Clients, s.Vehicles, s.Orders)
	for i, fo := range f.Orders {
		res, err := intake.QuickCreate(ctx, fo.toInput(now))
		if err != nil {
			return report, fmt.Errorf("order %d (%s): %w", i, fo.Vehicle.Plate, err)
		}
		order := res.Order

		for j, it := range fo.Items {
			if it.Status == "" || j >= len(order.Items) {
				continue
			}
			if _, err := s.Orders.UpdateItemStatus(ctx, order.ID, order.Items[j].ID, entities.ItemStatus(it.Status)); err != nil {
				return report, fmt.Errorf("order %d item %d: %w", i, j, err)
			}
		}

		if fo.Status != "" {
			status := entities.NormalizeStatus(fo.Status)
			if status == "" {
				return report, fmt.Errorf("order %d: unknown status %q", i, fo.Status)
			}
			var completedAt *time.Time
			if status.IsTerminal() {
				completedAt = &now
			}
			if err := s.Orders.UpdateStatus(ctx, order.ID, status, completedAt); err != nil {
				return report, fmt.Errorf("order %d status: %w", i, err)
			}
		}
		zap.L().Debug("[seed][cli] order created", zap.String("order_id", order.ID), zap.Int64("order_number", order.OrderNumber))
		report.Orders++
	}
	return report, nil
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load clients, vehicles and service orders from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			f, err := decodeFixture(file)
			if err != nil {
				return err
			}

			s, _, err := opts.openStorage(cmd.Context())
			if err != nil {
				return err
			}
			if migrate {
				if err := s.Migrate(cmd.Context()); err != nil {
					return err
				}
			}

			report, err := seed(cmd.Context(), s, f, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d orders (monthly goal set: %t)\n", report.Orders, report.GoalSet)
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrate before seeding")
	return cmd
}
