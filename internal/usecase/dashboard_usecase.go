package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/domain/kanban"
	"oficina/internal/domain/metrics"
	"oficina/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MonthlyGoalKey is the system_config key holding the revenue goal.
const MonthlyGoalKey = "meta_mensal"

type FinancialDashboard struct {
	Goal                  float64   `json:"goal"`
	Earned                float64   `json:"earned"`
	PercentOfGoal         float64   `json:"percent_of_goal"`
	DailyAverageNeeded    float64   `json:"daily_average_needed"`
	Projection            float64   `json:"projection"`
	AverageTicket         float64   `json:"average_ticket"`
	DeliveredCount        int       `json:"delivered_count"`
	OpenValue             float64   `json:"open_value"`
	BusinessDaysInMonth   int       `json:"business_days_in_month"`
	BusinessDaysElapsed   int       `json:"business_days_elapsed"`
	RemainingBusinessDays int       `json:"remaining_business_days"`
	GeneratedAt           time.Time `json:"generated_at"`
}

type MechanicProductivity struct {
	MechanicID string  `json:"mechanic_id"`
	Delivered  int     `json:"delivered"`
	Revenue    float64 `json:"revenue"`
}

type ProductivityDashboard struct {
	Mechanics     []MechanicProductivity `json:"mechanics"`
	StuckCount    int                    `json:"stuck_count"`
	LateCount     int                    `json:"late_count"`
	DueTodayCount int                    `json:"due_today_count"`
	Vehicles      metrics.VehicleBuckets `json:"vehicles"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

type IDashboardUseCase interface {
	Financial(ctx context.Context) (FinancialDashboard, error)
	Productivity(ctx context.Context) (ProductivityDashboard, error)
}

type DashboardUseCase struct {
	orders      interfaces.IServiceOrderRepository
	settings    interfaces.ISystemConfigRepository
	defaultGoal float64
	loc         *time.Location
	now         func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IServiceOrderRepository, settings interfaces.ISystemConfigRepository, defaultGoal float64, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{orders: orders, settings: settings, defaultGoal: defaultGoal, loc: loc, now: time.Now}
}

func (u *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	u.now = now
	return u
}

func (u *DashboardUseCase) Financial(ctx context.Context) (FinancialDashboard, error) {
	var (
		orders []entities.ServiceOrder
		goal   float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = u.orders.ListWithDetails(gctx)
		if err != nil {
			return fmt.Errorf("list service orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goal, err = u.monthlyGoal(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("[dashboard][usecase] financial fetch failed", zap.Error(err))
		return FinancialDashboard{}, err
	}

	now := u.now()
	delivered := kanban.DeliveredInMonth(orders, now, u.loc)
	earned := 0.0
	for _, o := range delivered {
		earned += o.ApprovedValue()
	}

	open := 0.0
	for _, o := range orders {
		if o.IsActive() {
			open += o.ApprovedValue()
		}
	}

	total := metrics.BusinessDaysInMonth(now, u.loc)
	elapsed := metrics.BusinessDaysElapsed(now, u.loc)
	remaining := metrics.RemainingBusinessDays(now, u.loc)

	return FinancialDashboard{
		Goal:                  goal,
		Earned:                earned,
		PercentOfGoal:         metrics.PercentOfGoal(earned, goal),
		DailyAverageNeeded:    metrics.DailyAverageForRemainingDays(goal, earned, remaining),
		Projection:            metrics.Projection(earned, elapsed, total),
		AverageTicket:         metrics.AverageTicket(earned, len(delivered)),
		DeliveredCount:        len(delivered),
		OpenValue:             open,
		BusinessDaysInMonth:   total,
		BusinessDaysElapsed:   elapsed,
		RemainingBusinessDays: remaining,
		GeneratedAt:           now,
	}, nil
}

func (u *DashboardUseCase) Productivity(ctx context.Context) (ProductivityDashboard, error) {
	orders, err := u.orders.ListWithDetails(ctx)
	if err != nil {
		zap.L().Error("[dashboard][usecase] productivity fetch failed", zap.Error(err))
		return ProductivityDashboard{}, fmt.Errorf("list service orders: %w", err)
	}

	now := u.now()
	byMechanic := map[string]*MechanicProductivity{}
	for _, o := range kanban.DeliveredInMonth(orders, now, u.loc) {
		id := o.MechanicID
		if id == "" {
			id = "sem_mecanico"
		}
		p, ok := byMechanic[id]
		if !ok {
			p = &MechanicProductivity{MechanicID: id}
			byMechanic[id] = p
		}
		p.Delivered++
		p.Revenue += o.ApprovedValue()
	}

	mechanics := make([]MechanicProductivity, 0, len(byMechanic))
	for _, p := range byMechanic {
		mechanics = append(mechanics, *p)
	}
	sort.Slice(mechanics, func(i, j int) bool {
		if mechanics[i].Delivered != mechanics[j].Delivered {
			return mechanics[i].Delivered > mechanics[j].Delivered
		}
		return mechanics[i].MechanicID < mechanics[j].MechanicID
	})

	buckets := metrics.ClassifyVehicles(orders, now, u.loc)
	return ProductivityDashboard{
		Mechanics:     mechanics,
		StuckCount:    len(buckets.Stuck),
		LateCount:     len(buckets.Late),
		DueTodayCount: len(buckets.DueToday),
		Vehicles:      buckets,
		GeneratedAt:   now,
	}, nil
}

func (u *DashboardUseCase) monthlyGoal(ctx context.Context) (float64, error) {
	if u.settings == nil {
		return u.defaultGoal, nil
	}
	raw, found, err := u.settings.GetValue(ctx, MonthlyGoalKey)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", MonthlyGoalKey, err)
	}
	if !found {
		return u.defaultGoal, nil
	}
	goal, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		zap.L().Warn("[dashboard][usecase] invalid monthly goal; using default", zap.String("value", raw))
		return u.defaultGoal, nil
	}
	return goal, nil
}
