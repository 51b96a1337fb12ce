package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/schedule"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type billingService struct {
	costs    billing.CostTable
	log      zerolog.Logger
	observer UseCaseObserver
}

// NewBillingService prices every evaluated set with costs.
func NewBillingService(costs billing.CostTable, log zerolog.Logger, observers ...UseCaseObserver) BillingService {
	return &billingService{
		costs:    costs.Clone(),
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *billingService) Evaluate(ctx context.Context, req app.EvaluateRequest) (resp *app.EvaluateResponse, err error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fields := map[string]any{"sets": len(req.Sets)}
	defer func() {
		s.observe(ctx, "evaluate", runID, startedAt, err, fields)
	}()

	reports := make([]app.SetReport, 0, len(req.Sets))
	for i, in := range req.Sets {
		var ps *billing.ProjectSet
		ps, err = s.build(i, in)
		if err != nil {
			return nil, err
		}
		reports = append(reports, reportFor(in.Description, ps))
	}
	fields["total"] = sumTotals(reports)

	return &app.EvaluateResponse{RunID: runID, Reports: reports}, nil
}

func (s *billingService) Verify(ctx context.Context, req app.VerifyRequest) (resp *app.VerifyResponse, err error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fields := map[string]any{"sets": len(req.Sets)}
	defer func() {
		s.observe(ctx, "verify", runID, startedAt, err, fields)
	}()

	resp = &app.VerifyResponse{RunID: runID}
	for i, in := range req.Sets {
		var ps *billing.ProjectSet
		ps, err = s.build(i, in)
		if err != nil {
			return nil, err
		}
		result := compare(reportFor(in.Description, ps), in.Expected)
		switch result.Status {
		case app.VerifyPassed:
			resp.Passed++
		case app.VerifyFailed:
			resp.Failed++
		case app.VerifySkipped:
			resp.Skipped++
		}
		resp.Results = append(resp.Results, result)
	}
	fields["passed"] = resp.Passed
	fields["failed"] = resp.Failed
	fields["skipped"] = resp.Skipped

	return resp, nil
}

func (s *billingService) Schedule(ctx context.Context, req app.ScheduleRequest) (resp *app.ScheduleResponse, err error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fields := map[string]any{"set": req.Set.Description}
	defer func() {
		s.observe(ctx, "schedule", runID, startedAt, err, fields)
	}()

	var ps *billing.ProjectSet
	ps, err = s.build(0, req.Set)
	if err != nil {
		return nil, err
	}

	sched := ps.Schedule()
	table := ps.CostTable()
	days := schedule.Fold(sched, make([]app.DayView, 0, sched.Len()), func(acc []app.DayView, d schedule.Day) []app.DayView {
		return append(acc, app.DayView{
			Date:  d.Date,
			Tier:  d.Tier,
			Type:  d.Type,
			Price: table.Price(d.Tier, d.Type),
		})
	})
	fields["days"] = len(days)

	projects := make([]app.ProjectView, 0, len(ps.Projects()))
	for _, p := range ps.Projects() {
		projects = append(projects, app.ProjectView{
			Name:     p.Name(),
			Tier:     p.Tier(),
			StartRaw: p.StartRaw(),
			EndRaw:   p.EndRaw(),
			Days:     p.Days(),
		})
	}

	return &app.ScheduleResponse{
		Report:   reportFor(req.Set.Description, ps),
		Projects: projects,
		Days:     days,
		Runs:     sched.Runs(),
	}, nil
}

func (s *billingService) build(index int, in app.ProjectSetInput) (*billing.ProjectSet, error) {
	log := s.log.With().Int("set", index).Str("description", in.Description).Logger()
	ps, err := billing.NewProjectSet(in.Records,
		billing.WithCostTable(s.costs),
		billing.WithLogger(log),
	)
	if err != nil {
		return nil, &app.SetError{Index: index, Description: in.Description, Err: err}
	}
	return ps, nil
}

func (s *billingService) observe(ctx context.Context, name, runID string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		RunID:     runID,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func reportFor(description string, ps *billing.ProjectSet) app.SetReport {
	sum := ps.Summary()
	return app.SetReport{
		Description: description,
		Projects:    sum.Projects,
		Days:        sum.Days,
		Counts:      sum.Counts,
		Total:       sum.Total,
	}
}

// compare checks a report against its expectation, listing every differing
// figure.
func compare(report app.SetReport, expected *app.Expectation) app.VerifyResult {
	result := app.VerifyResult{Report: report, Expected: expected}
	if expected == nil {
		result.Status = app.VerifySkipped
		return result
	}

	checks := []struct {
		label     string
		got, want int
	}{
		{"low travel days", report.Counts.LowTravel, expected.Counts.LowTravel},
		{"low full days", report.Counts.LowFull, expected.Counts.LowFull},
		{"high travel days", report.Counts.HighTravel, expected.Counts.HighTravel},
		{"high full days", report.Counts.HighFull, expected.Counts.HighFull},
		{"total", report.Total, expected.Total},
	}
	for _, c := range checks {
		if c.got != c.want {
			result.Mismatches = append(result.Mismatches, fmt.Sprintf("%s: expected %d, got %d", c.label, c.want, c.got))
		}
	}

	result.Status = app.VerifyPassed
	if len(result.Mismatches) > 0 {
		result.Status = app.VerifyFailed
	}
	return result
}

func sumTotals(reports []app.SetReport) int {
	total := 0
	for _, r := range reports {
		total += r.Total
	}
	return total
}
