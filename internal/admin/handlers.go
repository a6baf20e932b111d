package admin

import (
	"bytes"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"salesperf/internal/api"
	"salesperf/internal/evaluation"
	"salesperf/internal/middleware"
)

type Handler struct {
	Store *evaluation.Store
}

func NewHandler(store *evaluation.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/evaluations", h.handleHistory)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Post("/reset", h.handleReset)
		r.Get("/report", h.handleReport)
	})
}

type overviewStats struct {
	TotalEvaluations int     `json:"totalEvaluations"`
	TotalPoints      int     `json:"totalPoints"`
	AverageScore     float64 `json:"averageScore"`
}

type overviewResponse struct {
	Stats     overviewStats         `json:"stats"`
	Employees []evaluation.Employee `json:"employees"`
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	employees := h.Store.Employees(r.Context())
	history := h.Store.History(r.Context())

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].Points > employees[j].Points
	})

	api.Success(w, overviewResponse{
		Stats:     computeOverviewStats(employees, history),
		Employees: employees,
	}, middleware.GetRequestID(r.Context()))
}

func computeOverviewStats(employees []evaluation.Employee, history []evaluation.HistoryEntry) overviewStats {
	stats := overviewStats{TotalEvaluations: len(history)}
	for _, emp := range employees {
		stats.TotalPoints += emp.Points
	}
	if len(history) > 0 {
		var sum int
		for _, entry := range history {
			sum += entry.TotalScore
		}
		stats.AverageScore = float64(sum) / float64(len(history))
	}
	return stats
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.History(r.Context()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.Reset(r.Context()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "reset_failed", "failed to reset stored data", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "reset"}, reqID)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	employees := h.Store.Employees(r.Context())
	history := h.Store.History(r.Context())

	var buf bytes.Buffer
	if err := WriteReport(&buf, employees, history); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="evaluation-report.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
