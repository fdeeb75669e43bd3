package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina/internal/adapter/http/handlers/mocks"
	"oficina/internal/domain/entities"
	"oficina/internal/domain/kanban"
	"oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newKanbanRouter(t *testing.T) (*gin.Engine, *mocks.MockIKanbanUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIKanbanUseCase(ctrl)
	h := NewKanbanHandler(uc)

	r := gin.New()
	r.GET("/v1/kanban", h.GetBoard)
	r.POST("/v1/kanban/refresh", h.RefreshBoard)
	r.PATCH("/v1/kanban/orders/:order_id/move", h.MoveOrder)
	return r, uc
}

func TestKanbanHandler_GetBoard(t *testing.T) {
	t.Run("re-fetches on every read", func(t *testing.T) {
		r, uc := newKanbanRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.BoardSnapshot{Board: kanban.NewBoard(), RefreshedAt: time.Now()}, nil).Times(2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/kanban", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body struct {
				Columns []struct {
					Stage string `json:"stage"`
				} `json:"columns"`
				Stale bool `json:"stale"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if len(body.Columns) != len(entities.Stages()) || body.Stale {
				t.Fatalf("expected fresh board with all stages, got body: %s", w.Body.String())
			}
		}
	})

	t.Run("falls back to last board when storage fails", func(t *testing.T) {
		r, uc := newKanbanRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.BoardSnapshot{Board: kanban.NewBoard(), RefreshedAt: time.Now()}, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/kanban", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Stale bool `json:"stale"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Stale {
			t.Fatalf("expected stale flag, got body: %s", w.Body.String())
		}
	})

	t.Run("never loaded and storage fails", func(t *testing.T) {
		r, uc := newKanbanRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.BoardSnapshot{Board: kanban.NewBoard()}, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/kanban", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestKanbanHandler_RefreshBoard_Error(t *testing.T) {
	r, uc := newKanbanRouter(t)
	uc.EXPECT().Refresh(gomock.Any()).Return(usecase.BoardSnapshot{}, errors.New("db down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/kanban/refresh", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestKanbanHandler_MoveOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		to   entities.StageID
		err  error
		code int
	}{
		{name: "invalid json", body: "{", code: http.StatusBadRequest},
		{name: "missing target", body: `{"from":"orcamento"}`, code: http.StatusBadRequest},
		{name: "unknown stage", body: `{"from":"orcamento","to":"lavagem"}`, to: "lavagem", err: usecase.ErrInvalidStage, code: http.StatusBadRequest},
		{name: "not on board", body: `{"from":"orcamento","to":"pronto"}`, to: entities.StagePronto, err: usecase.ErrOrderNotOnBoard, code: http.StatusNotFound},
		{name: "persistence failure", body: `{"from":"orcamento","to":"pronto"}`, to: entities.StagePronto, err: errors.New("timeout"), code: http.StatusServiceUnavailable},
		{name: "success", body: `{"from":" Orcamento ","to":"PRONTO"}`, to: entities.StagePronto, code: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newKanbanRouter(t)
			if tc.to != "" {
				uc.EXPECT().MoveOrder(gomock.Any(), "os-1", entities.StageOrcamento, tc.to).
					Return(usecase.MoveResult{Moved: tc.err == nil, Persisted: tc.err == nil, Snapshot: usecase.BoardSnapshot{Board: kanban.NewBoard()}}, tc.err)
			}

			req := httptest.NewRequest(http.MethodPatch, "/v1/kanban/orders/os-1/move", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d (%s)", tc.code, w.Code, w.Body.String())
			}
			if tc.code == http.StatusOK {
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["persisted"] != true {
					t.Fatalf("unexpected body: %s", w.Body.String())
				}
			}
		})
	}
}
