package employees

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salesperf/internal/api"
	"salesperf/internal/enrich"
	"salesperf/internal/evaluation"
	"salesperf/internal/middleware"
)

type Handler struct {
	Store  *evaluation.Store
	Enrich *enrich.Client
}

func NewHandler(store *evaluation.Store, enrichClient *enrich.Client) *Handler {
	return &Handler{Store: store, Enrich: enrichClient}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleDetail)
			r.Post("/evaluations", h.handleSubmitEvaluation)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Employees(r.Context()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	emp, err := h.Store.Employee(r.Context(), employeeID)
	if errors.Is(err, evaluation.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, detailResponse{
		Employee: emp,
		Stats:    computeStats(emp),
	}, middleware.GetRequestID(r.Context()))
}

type submitPayload struct {
	EvaluatorName string            `json:"evaluatorName"`
	Scores        evaluation.Scores `json:"scores"`
	Comments      string            `json:"comments"`
}

type submitResponse struct {
	Evaluation evaluation.Evaluation `json:"evaluation"`
	Persisted  bool                  `json:"persisted"`
	AISource   string                `json:"aiSource"`
}

func (h *Handler) handleSubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if code, message, ok := validateSubmission(payload); !ok {
		api.Fail(w, http.StatusBadRequest, code, message, reqID)
		return
	}

	emp, err := h.Store.Employee(r.Context(), employeeID)
	if errors.Is(err, evaluation.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}

	enriched := h.Enrich.Evaluate(r.Context(), enrich.Request{
		EmployeeName:  emp.Name,
		EvaluatorName: payload.EvaluatorName,
		Scores:        payload.Scores,
		Comments:      payload.Comments,
	})

	eval := evaluation.Evaluation{
		ID:               uuid.NewString(),
		EmployeeID:       employeeID,
		EvaluatorName:    payload.EvaluatorName,
		Date:             time.Now().UTC(),
		Scores:           payload.Scores,
		TotalScore:       enriched.TotalScore,
		Points:           enriched.Points,
		Comments:         payload.Comments,
		AIAnalysis:       enriched.AIAnalysis,
		DetailedFeedback: enriched.DetailedFeedback,
		IsValid:          enriched.IsValid,
		Recommendations:  enriched.Recommendations,
		AISource:         enriched.Source,
	}

	persisted, err := h.Store.AddEvaluation(r.Context(), employeeID, eval)
	if errors.Is(err, evaluation.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
		return
	}

	api.Created(w, submitResponse{
		Evaluation: eval,
		Persisted:  persisted,
		AISource:   enriched.Source,
	}, reqID)
}

func validateSubmission(payload submitPayload) (code, message string, ok bool) {
	if strings.TrimSpace(payload.EvaluatorName) == "" {
		return "evaluator_required", "evaluator name is required", false
	}
	for _, score := range []int{
		payload.Scores.SalesSkill,
		payload.Scores.Communication,
		payload.Scores.Teamwork,
		payload.Scores.Leadership,
		payload.Scores.CustomerService,
	} {
		if score < 1 || score > 5 {
			return "invalid_scores", "each score must be between 1 and 5", false
		}
	}
	return "", "", true
}
