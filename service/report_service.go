package service

import (
	"context"
	"fmt"

	"opsmetrics/models"

	log "github.com/sirupsen/logrus"
)

// reportService implements the ReportService interface
type reportService struct {
	uowFactory UnitOfWorkFactory
}

// NewReportService creates a new report service
func NewReportService(uowFactory UnitOfWorkFactory) ReportService {
	return &reportService{
		uowFactory: uowFactory,
	}
}

// withSnapshot runs fn inside one read-only unit of work. Reports
// never mutate anything, so the transaction is always rolled back.
func (s *reportService) withSnapshot(ctx context.Context, fn func(uow UnitOfWork) error) error {
	uow := s.uowFactory.Create()
	if err := uow.BeginReadOnly(ctx); err != nil {
		return fmt.Errorf("failed to begin read-only transaction: %w", err)
	}
	defer uow.Rollback()

	return fn(uow)
}

// MonthlyVolume returns the transaction count per month
func (s *reportService) MonthlyVolume(ctx context.Context) ([]*models.MonthlyVolumeRow, error) {
	var rows []*models.MonthlyVolumeRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().MonthlyVolume(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "monthly_volume", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// MonthlyAvgCycleHours returns the mean cycle time per month
func (s *reportService) MonthlyAvgCycleHours(ctx context.Context) ([]*models.MonthlyCycleRow, error) {
	var rows []*models.MonthlyCycleRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().MonthlyAvgCycleHours(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "monthly_avg_cycle_hours", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// MonthlyErrorRatePct returns the Failed percentage per month
func (s *reportService) MonthlyErrorRatePct(ctx context.Context) ([]*models.MonthlyErrorRateRow, error) {
	var rows []*models.MonthlyErrorRateRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().MonthlyErrorRatePct(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "monthly_error_rate_pct", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// FeatureUtilization returns per-feature counts and volume shares
func (s *reportService) FeatureUtilization(ctx context.Context) ([]*models.FeatureUtilizationRow, error) {
	var rows []*models.FeatureUtilizationRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().FeatureUtilization(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "feature_utilization", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// MonthlyCostPerTxn returns cost-per-transaction per cost month
func (s *reportService) MonthlyCostPerTxn(ctx context.Context) ([]*models.MonthlyCostRow, error) {
	var rows []*models.MonthlyCostRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().MonthlyCostPerTxn(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "monthly_cost_per_txn", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// MonthlyVsTargets pairs monthly actuals with their targets
func (s *reportService) MonthlyVsTargets(ctx context.Context) ([]*models.TargetComparisonRow, error) {
	var rows []*models.TargetComparisonRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().MonthlyVsTargets(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "monthly_vs_targets", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// RegionDepartmentSnapshot returns per region/department performance
func (s *reportService) RegionDepartmentSnapshot(ctx context.Context) ([]*models.RegionDepartmentRow, error) {
	var rows []*models.RegionDepartmentRow
	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		var err error
		rows, err = uow.ReportRepository().RegionDepartmentSnapshot(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"report": "region_department_snapshot", "rows": len(rows)}).Debug("Report computed")
	return rows, nil
}

// MonthlyOverview merges volume, cycle time, and error rate into one
// row per month. All three reads run in the same snapshot, so the
// month sets line up: every month with volume has an error rate, and
// cycle time is nil only when the month had no measurable Completed or
// Reprocessed transactions.
func (s *reportService) MonthlyOverview(ctx context.Context) ([]*models.MonthlyOverviewRow, error) {
	var (
		volume     []*models.MonthlyVolumeRow
		cycles     []*models.MonthlyCycleRow
		errorRates []*models.MonthlyErrorRateRow
	)

	err := s.withSnapshot(ctx, func(uow UnitOfWork) error {
		reports := uow.ReportRepository()

		var err error
		if volume, err = reports.MonthlyVolume(ctx); err != nil {
			return err
		}
		if cycles, err = reports.MonthlyAvgCycleHours(ctx); err != nil {
			return err
		}
		if errorRates, err = reports.MonthlyErrorRatePct(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cycleByMonth := make(map[string]float64, len(cycles))
	for _, c := range cycles {
		cycleByMonth[c.Month] = c.AvgCycleHours
	}

	errorRateByMonth := make(map[string]float64, len(errorRates))
	for _, e := range errorRates {
		errorRateByMonth[e.Month] = e.ErrorRatePct
	}

	overview := make([]*models.MonthlyOverviewRow, 0, len(volume))
	for _, v := range volume {
		row := &models.MonthlyOverviewRow{
			Month:        v.Month,
			TxnCount:     v.TxnCount,
			ErrorRatePct: errorRateByMonth[v.Month],
		}
		if avg, ok := cycleByMonth[v.Month]; ok {
			row.AvgCycleHours = &avg
		}
		overview = append(overview, row)
	}

	log.WithFields(log.Fields{"report": "monthly_overview", "rows": len(overview)}).Debug("Report computed")
	return overview, nil
}
