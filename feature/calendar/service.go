package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bloom/core/cycle"
	"bloom/core/render"
	"bloom/feature/journal"

	"go.uber.org/zap"
)

// MonthLayout is the path form of a month, e.g. "2025-03".
const MonthLayout = "2006-01"

// ErrBadMonth is returned when the month key is not of the form YYYY-MM.
var ErrBadMonth = errors.New("invalid month: expected YYYY-MM")

// MonthView is the assembled month page.
type MonthView struct {
	// Month is the YYYY-MM month key.
	Month string `json:"month"`
	// Phase is today's derived phase info.
	Phase cycle.PhaseInfo `json:"phase"`
	// Cells are the grid day cells in display order.
	Cells []cycle.Cell `json:"cells"`
	// HTML is the incrementally rendered grid markup.
	HTML string `json:"html"`
}

// Service assembles month views.
type Service struct {
	journal *journal.Service
	session *render.Session
	logger  *zap.Logger
	now     func() time.Time

	// mu serializes repaints; a container must not be reconciled from two
	// requests at once.
	mu sync.Mutex
}

// NewService creates the calendar service with its own render session.
func NewService(j *journal.Service, logger *zap.Logger) *Service {
	return &Service{
		journal: j,
		session: render.NewSession(),
		logger:  logger,
		now:     time.Now,
	}
}

// Month builds the view for a YYYY-MM month key.
func (s *Service) Month(ctx context.Context, month string) (*MonthView, error) {
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadMonth, month)
	}

	log, err := s.journal.Log(ctx)
	if err != nil {
		return nil, err
	}
	cfg := s.journal.CycleConfig(ctx)
	now := s.now()

	cells := cycle.BuildMonthCells(start, cfg, log, now)
	phase := cycle.ComputePhase(now, cfg, log)

	s.mu.Lock()
	defer s.mu.Unlock()

	container := s.session.Container("calendar/" + month)
	if err := render.Reconcile(container, cells, cellKey, cellFragment, emptyMonth); err != nil {
		return nil, err
	}

	return &MonthView{
		Month: month,
		Phase: phase,
		Cells: cells,
		HTML:  container.HTML(),
	}, nil
}

// InvalidateAll discards every rendered month container, forcing full
// repaints on the next views. Called after journal writes since day-cell
// payloads change in place while their keys stay stable, and one write can
// shift derived state in any month.
func (s *Service) InvalidateAll() {
	s.session.InvalidateAll()
}

const emptyMonth = `<p class="calendar-empty">No days to show.</p>`

func cellKey(c cycle.Cell) string {
	return c.Key
}

func cellFragment(c cycle.Cell) *render.Fragment {
	class := "day"
	if !c.InMonth {
		class += " out"
	}
	if c.Today {
		class += " today"
	}
	if c.Period {
		class += " period"
	}
	if c.PredictedPeriod {
		class += " predicted"
	}
	if c.Ovulation {
		class += " ovulation"
	} else if c.Fertile {
		class += " fertile"
	}
	if c.HasData {
		class += " logged"
	}
	return render.NewFragment(fmt.Sprintf(
		`<div class="%s" data-date="%s" data-phase="%s">%d</div>`,
		class, c.Key, c.Phase, c.Day,
	))
}
