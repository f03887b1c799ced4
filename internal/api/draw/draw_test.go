package draw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	dto "slot_machine/internal/api/dto/draw"
	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/worker"
)

type fakeService struct {
	res   *model.SpinResult
	err   error
	stats model.DrawStats
}

func (f *fakeService) Spin(context.Context) (*model.SpinResult, error) { return f.res, f.err }
func (f *fakeService) Symbols() model.Alphabet { return model.DefaultAlphabet() }
func (f *fakeService) Stats() model.DrawStats { return f.stats }

var testMessages = config.Messages{Idle: "idle", Win: "win!", Lose: "again"}

func newTestRouter(serv *fakeService) http.Handler {
	h := NewHandler(HandlerDeps{Serv: serv, Messages: testMessages})

	r := chi.NewRouter()
	r.Route("/draw", func(rr chi.Router) {
		rr.Get("/", h.Screen)
		rr.Post("/spin", h.Spin)
		rr.Get("/symbols", h.Symbols)
		rr.Get("/stats", h.Stats)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path string, out any) int {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return rec.Code
}

func TestHandler_Screen(t *testing.T) {
	h := newTestRouter(&fakeService{})

	var got dto.ScreenResponse
	if code := do(t, h, http.MethodGet, "/draw", &got); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if got.Text != "idle" || got.Color != "dodgerblue" {
		t.Errorf("screen = %+v", got)
	}
}

func TestHandler_Spin(t *testing.T) {
	cases := []struct {
		name    string
		res     model.SpinResult
		display string
		message string
		color   string
	}{
		{
			name:    "win",
			res:     model.SpinResult{Outcome: model.Outcome{model.Star, model.Star, model.Star}, Win: true},
			display: "⭐ | ⭐ | ⭐",
			message: "win!",
			color:   "green",
		},
		{
			name:    "lose",
			res:     model.SpinResult{Outcome: model.Outcome{model.Cherry, model.Bell, model.Cherry}},
			display: "🍒 | 🔔 | 🍒",
			message: "again",
			color:   "red",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := tc.res
			h := newTestRouter(&fakeService{res: &res})

			var got dto.SpinResponse
			if code := do(t, h, http.MethodPost, "/draw/spin", &got); code != http.StatusOK {
				t.Fatalf("status = %d, want 200", code)
			}
			if got.Display != tc.display || got.Message != tc.message || got.Color != tc.color || got.Win != tc.res.Win {
				t.Errorf("unexpected response: %+v", got)
			}
			if len(got.Symbols) != model.OutcomeSize {
				t.Errorf("got %d symbols, want %d", len(got.Symbols), model.OutcomeSize)
			}
		})
	}
}

func TestHandler_SpinErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "cancelled", err: fmt.Errorf("spin: %w", context.Canceled), want: http.StatusServiceUnavailable},
		{name: "closed", err: fmt.Errorf("spin: %w", worker.ErrClosed), want: http.StatusServiceUnavailable},
		{name: "overloaded", err: worker.ErrOverloaded, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newTestRouter(&fakeService{err: tc.err})
			if code := do(t, h, http.MethodPost, "/draw/spin", nil); code != tc.want {
				t.Errorf("status = %d, want %d", code, tc.want)
			}
		})
	}
}

func TestHandler_SymbolsAndStats(t *testing.T) {
	stats := model.DrawStats{TotalSpins: 4, Wins: 1, WinRate: 0.25, WindowSize: 10, WindowSpins: 4}
	for i := range stats.SymbolCounts {
		stats.SymbolCounts[i] = map[model.Symbol]int{model.Cherry: 4}
	}
	h := newTestRouter(&fakeService{stats: stats})

	var symbols dto.SymbolsResponse
	if code := do(t, h, http.MethodGet, "/draw/symbols", &symbols); code != http.StatusOK {
		t.Fatalf("symbols status = %d", code)
	}
	if len(symbols.Symbols) != 5 || symbols.Symbols[0] != string(model.Cherry) {
		t.Errorf("symbols = %v", symbols.Symbols)
	}

	var got dto.StatsResponse
	if code := do(t, h, http.MethodGet, "/draw/stats", &got); code != http.StatusOK {
		t.Fatalf("stats status = %d", code)
	}
	if got.TotalSpins != 4 || got.Wins != 1 || len(got.Positions) != model.OutcomeSize {
		t.Errorf("stats = %+v", got)
	}
	if got.Positions[2][string(model.Cherry)] != 4 {
		t.Errorf("positions = %v", got.Positions)
	}
}
