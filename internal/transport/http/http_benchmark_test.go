//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/internal/routing"
)

// --- Бенчмарки ---

// Базовый бенч: POST /validate (успешный прогон) — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_Validate(b *testing.B) {
	log := nopLogger{}
	report := benchReport("bench-cust")
	h := NewHandler(svcOne{report: report}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	body := `{"customerId":"bench-cust"}`

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServePOST(b, lean, "/validate", body)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServePOST(b, full, "/validate", body)
	})
}

// Потолок без маршалинга: тот же отчёт, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetRun_PreMarshaledBytes(b *testing.B) {
	report := benchReport("bench-cust")
	raw, _ := json.Marshal(report)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/validations/:run_id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/validations/"+report.RunID)
}

// Пагинация: 10/50/100 отчётов — измеряем рост аллокаций и времени
func BenchmarkHTTP_ListRuns(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			// готовим список из n отчётов
			list := make([]*domain.RunReport, 0, n)
			for i := 0; i < n; i++ {
				r := benchReport("bench-cust")
				r.RunID = "run-" + strconv.Itoa(i)
				list = append(list, r)
			}
			h := NewHandler(svcList{list: list}, log, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/customers/bench-cust/validations?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcOne{report: benchReport("bench-cust")}, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

func benchReport(customerID string) *domain.RunReport {
	now := time.Now().UTC()
	return &domain.RunReport{
		RunID:      "run-bench",
		CustomerID: customerID,
		Steps:      domain.KnownSteps(),
		State: domain.PipelineState{
			Phase:           domain.PhaseSuccess,
			CompletedSteps:  domain.KnownSteps(),
			ValidationState: domain.StateAllowed,
		},
		StartedAt:  now.Add(-50 * time.Millisecond),
		FinishedAt: now,
	}
}

type svcOne struct{ report *domain.RunReport }

func (s svcOne) Validate(context.Context, ports.ValidateInput) (*domain.RunReport, domain.Navigation, error) {
	return s.report, routing.Navigate(s.report, nil), nil
}
func (s svcOne) RunByID(context.Context, string) (*domain.RunReport, error) { return s.report, nil }
func (s svcOne) RunsByCustomer(context.Context, string, int, int) ([]*domain.RunReport, error) {
	return []*domain.RunReport{s.report}, nil
}

// для списка: заранее подготовленная выборка N элементов (без аллокаций на каждом вызове)
type svcList struct{ list []*domain.RunReport }

func (s svcList) Validate(context.Context, ports.ValidateInput) (*domain.RunReport, domain.Navigation, error) {
	return s.list[0], routing.Navigate(s.list[0], nil), nil
}
func (s svcList) RunByID(context.Context, string) (*domain.RunReport, error) { return s.list[0], nil }
func (s svcList) RunsByCustomer(context.Context, string, int, int) ([]*domain.RunReport, error) {
	return s.list, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.POST("/validate", h.validate)
	r.GET("/validations/:run_id", h.getRunByID)
	r.GET("/customers/:id/validations", h.listRunsByCustomer)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

func benchServePOST(b *testing.B, r *gin.Engine, path, body string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
