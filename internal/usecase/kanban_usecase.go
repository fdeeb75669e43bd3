package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/domain/kanban"
	"oficina/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidStage    = errors.New("invalid kanban stage")
	ErrOrderNotOnBoard = errors.New("order not found in source stage")
)

// BoardSnapshot is the board as currently shown to staff.
type BoardSnapshot struct {
	Board            kanban.Board `json:"board"`
	MonthlyDelivered float64      `json:"monthly_delivered"`
	RefreshedAt      time.Time    `json:"refreshed_at"`
}

// MoveResult reports what MoveOrder did.
type MoveResult struct {
	Moved     bool          `json:"moved"`
	Persisted bool          `json:"persisted"`
	Snapshot  BoardSnapshot `json:"snapshot"`
}

// IKanbanUseCase owns the staff kanban board.
//
//   - Refresh re-fetches every order and regroups them.
//   - MoveOrder applies the move locally first, then persists it; a failed
//     write is compensated by a full Refresh.
type IKanbanUseCase interface {
	Refresh(ctx context.Context) (BoardSnapshot, error)
	Snapshot() BoardSnapshot
	MoveOrder(ctx context.Context, orderID string, from, to entities.StageID) (MoveResult, error)
}

// KanbanUseCase keeps the grouped board in memory. State changes go through
// kanban.ApplyMove; storage writes happen outside the lock.
type KanbanUseCase struct {
	repo     interfaces.IServiceOrderRepository
	notifier interfaces.INotifier
	loc      *time.Location
	now      func() time.Time

	mu    sync.RWMutex
	state BoardSnapshot
	// bumped by every local move; a fetch that started earlier must not
	// overwrite the board
	version uint64
}

var _ IKanbanUseCase = (*KanbanUseCase)(nil)

func NewKanbanUseCase(repo interfaces.IServiceOrderRepository, notifier interfaces.INotifier, loc *time.Location) *KanbanUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &KanbanUseCase{
		repo:     repo,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		state:    BoardSnapshot{Board: kanban.NewBoard()},
	}
}

// WithClock replaces the time source; used by tests.
func (u *KanbanUseCase) WithClock(now func() time.Time) *KanbanUseCase {
	u.now = now
	return u
}

func (u *KanbanUseCase) Snapshot() BoardSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state
}

func (u *KanbanUseCase) Refresh(ctx context.Context) (BoardSnapshot, error) {
	log := zap.L()
	u.mu.RLock()
	version := u.version
	u.mu.RUnlock()

	orders, err := u.repo.ListWithDetails(ctx)
	if err != nil {
		log.Error("[kanban][usecase] fetch failed; keeping previous board", zap.Error(err))
		u.notifier.Error(ctx, "Erro ao carregar ordens de serviço")
		return u.Snapshot(), fmt.Errorf("list service orders: %w", err)
	}

	now := u.now()
	snap := BoardSnapshot{
		Board:            kanban.BuildBoard(orders, now, u.loc),
		MonthlyDelivered: kanban.MonthlyDelivered(orders, now, u.loc),
		RefreshedAt:      now,
	}

	u.mu.Lock()
	if u.version != version {
		current := u.state
		u.mu.Unlock()
		log.Info("[kanban][usecase] move applied during fetch; keeping local board")
		return current, nil
	}
	u.state = snap
	u.mu.Unlock()

	log.Info("[kanban][usecase] board refreshed",
		zap.Int("orders", len(orders)),
		zap.Float64("monthly_delivered", snap.MonthlyDelivered),
	)
	return snap, nil
}

func (u *KanbanUseCase) MoveOrder(ctx context.Context, orderID string, from, to entities.StageID) (MoveResult, error) {
	log := zap.L().With(zap.String("order_id", orderID), zap.String("from", string(from)), zap.String("to", string(to)))

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return MoveResult{}, ErrInvalidOrderID
	}
	status, ok := entities.StatusOf(to)
	if !ok || !entities.IsKnownStage(from) {
		return MoveResult{}, ErrInvalidStage
	}
	if from == to {
		return MoveResult{Snapshot: u.Snapshot()}, nil
	}

	// Optimistic step: the board reflects the move before any write.
	move := kanban.Move{OrderID: orderID, From: from, To: to}
	card, moved, err := u.applyLocally(move)
	if errors.Is(err, kanban.ErrCardNotFound) {
		// The order may have been created after the last fetch.
		log.Info("[kanban][usecase] card not on board; re-fetching once")
		if _, refreshErr := u.Refresh(ctx); refreshErr != nil {
			return MoveResult{Snapshot: u.Snapshot()}, refreshErr
		}
		card, moved, err = u.applyLocally(move)
	}
	if err != nil {
		if errors.Is(err, kanban.ErrCardNotFound) {
			return MoveResult{}, ErrOrderNotOnBoard
		}
		return MoveResult{}, ErrInvalidStage
	}
	log.Info("[kanban][usecase] move applied locally")

	var completedAt *time.Time
	if status.IsTerminal() {
		ts := u.now()
		completedAt = &ts
	}

	if err := u.repo.UpdateStatus(ctx, orderID, status, completedAt); err != nil {
		log.Error("[kanban][usecase] persist failed; re-fetching board", zap.Error(err))
		u.notifier.Error(ctx, "Erro ao mover ordem de serviço")
		snap, refreshErr := u.Refresh(ctx)
		if refreshErr != nil {
			log.Error("[kanban][usecase] re-fetch after failed move also failed", zap.Error(refreshErr))
		}
		return MoveResult{Moved: moved, Snapshot: snap}, fmt.Errorf("update order status: %w", err)
	}

	delivered := 0.0
	if status.IsTerminal() {
		delivered = u.currentApprovedValue(ctx, orderID, card)
	}

	u.mu.Lock()
	u.state.MonthlyDelivered += delivered
	snap := u.state
	u.mu.Unlock()

	u.notifier.Success(ctx, fmt.Sprintf("OS movida para %s", entities.StageTitle(to)))
	log.Info("[kanban][usecase] move persisted", zap.String("status", string(status)))
	return MoveResult{Moved: moved, Persisted: true, Snapshot: snap}, nil
}

func (u *KanbanUseCase) applyLocally(m kanban.Move) (kanban.Card, bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	next, card, moved, err := kanban.ApplyMove(u.state.Board, m)
	if err != nil {
		return kanban.Card{}, false, err
	}
	u.state.Board = next
	u.version++
	return card, moved, nil
}

// currentApprovedValue reads the order back so item decisions taken since
// the last fetch are counted. The card value is the fallback.
func (u *KanbanUseCase) currentApprovedValue(ctx context.Context, orderID string, card kanban.Card) float64 {
	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil || order.ID == "" {
		zap.L().Warn("[kanban][usecase] could not re-read delivered order; using board value",
			zap.String("order_id", orderID), zap.Error(err))
		return card.ApprovedValue
	}
	return order.ApprovedValue()
}
