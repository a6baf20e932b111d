package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"salesperf/internal/kvstore"
)

const (
	employeesKey = "sales_employees"
	historyKey   = "evaluation_history"
)

// ErrEmployeeNotFound is returned when an employee id has no matching
// roster entry.
var ErrEmployeeNotFound = errors.New("evaluation: employee not found")

// Store owns the employee roster and the evaluation history feed on top
// of an injected key-value backend. Reads degrade to seed/empty data on
// backend failures; writes are best-effort and report whether they
// actually persisted. All roster mutations go through a single mutex so
// concurrent submissions cannot lose updates in the read-modify-write
// cycle.
type Store struct {
	kv kvstore.Store
	mu sync.Mutex
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Employees returns the stored roster, seeding it on first use. It never
// fails: backend errors degrade to the in-memory seed.
func (s *Store) Employees(ctx context.Context) []Employee {
	employees, stored := s.loadEmployees(ctx)
	if !stored {
		if err := s.saveEmployees(ctx, employees); err != nil {
			slog.Warn("seed roster not persisted", "err", err)
		}
	}
	return employees
}

func (s *Store) loadEmployees(ctx context.Context) ([]Employee, bool) {
	raw, err := s.kv.Get(ctx, employeesKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return SeedEmployees(), false
	}
	if err != nil {
		slog.Warn("load roster failed, using seed", "err", err)
		return SeedEmployees(), true
	}

	var employees []Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		slog.Warn("stored roster unreadable, using seed", "err", err)
		return SeedEmployees(), true
	}
	return employees, true
}

func (s *Store) saveEmployees(ctx context.Context, employees []Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := s.kv.Set(ctx, employeesKey, raw); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}

// SaveEmployees overwrites the stored roster wholesale. Failures are
// logged and swallowed; persistence is best-effort.
func (s *Store) SaveEmployees(ctx context.Context, employees []Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveEmployees(ctx, employees); err != nil {
		slog.Warn("save roster failed", "err", err)
	}
}

// Employee looks up one roster entry by id.
func (s *Store) Employee(ctx context.Context, id string) (Employee, error) {
	for _, emp := range s.Employees(ctx) {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

// AddEvaluation appends eval to the employee's record, adds its points to
// the employee's total, persists the roster, then prepends a flattened
// entry to the history feed. The two writes are not atomic: a failure
// between them leaves the roster updated and the history stale, which is
// an accepted inconsistency window. The returned bool reports whether
// both writes persisted so callers can surface a non-blocking warning.
func (s *Store) AddEvaluation(ctx context.Context, employeeID string, eval Evaluation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, _ := s.loadEmployees(ctx)
	idx := -1
	for i := range employees {
		if employees[i].ID == employeeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, ErrEmployeeNotFound
	}

	employees[idx].Evaluations = append(employees[idx].Evaluations, eval)
	employees[idx].Points += eval.Points

	persisted := true
	if err := s.saveEmployees(ctx, employees); err != nil {
		slog.Warn("evaluation not persisted to roster", "employeeId", employeeID, "evaluationId", eval.ID, "err", err)
		persisted = false
	}

	entry := HistoryEntry{
		ID:            eval.ID,
		EmployeeID:    eval.EmployeeID,
		EmployeeName:  employees[idx].Name,
		EvaluatorName: eval.EvaluatorName,
		Date:          eval.Date,
		TotalScore:    eval.TotalScore,
		Points:        eval.Points,
		Comments:      eval.Comments,
	}
	if err := s.prependHistory(ctx, entry); err != nil {
		slog.Warn("evaluation not persisted to history", "evaluationId", eval.ID, "err", err)
		persisted = false
	}

	return persisted, nil
}

func (s *Store) prependHistory(ctx context.Context, entry HistoryEntry) error {
	history := s.loadHistory(ctx)
	history = append([]HistoryEntry{entry}, history...)

	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, historyKey, raw); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// History returns the evaluation feed, newest first. It never fails:
// backend errors degrade to an empty feed.
func (s *Store) History(ctx context.Context) []HistoryEntry {
	return s.loadHistory(ctx)
}

func (s *Store) loadHistory(ctx context.Context) []HistoryEntry {
	raw, err := s.kv.Get(ctx, historyKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []HistoryEntry{}
	}
	if err != nil {
		slog.Warn("load history failed", "err", err)
		return []HistoryEntry{}
	}

	var history []HistoryEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		slog.Warn("stored history unreadable", "err", err)
		return []HistoryEntry{}
	}
	return history
}

// Reset deletes both stored keys so the next Employees call reseeds.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.kv.Delete(ctx, employeesKey); err != nil {
		errs = append(errs, fmt.Errorf("delete roster: %w", err))
	}
	if err := s.kv.Delete(ctx, historyKey); err != nil {
		errs = append(errs, fmt.Errorf("delete history: %w", err))
	}
	return errors.Join(errs...)
}
