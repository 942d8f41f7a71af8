package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/torxlabs/go-treasury/internal/models"
)

type TreasuryPrometheusMetrics struct {
	runsTotal        *prometheus.CounterVec
	topupAmountTotal *prometheus.CounterVec
	bankBalanceGauge *prometheus.GaugeVec
	pendingTransfers prometheus.Gauge
	payoutMatches    *prometheus.CounterVec
}

func newTreasuryPrometheusMetrics(reg prometheus.Registerer) *TreasuryPrometheusMetrics {
	mtc := &TreasuryPrometheusMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_consolidation_runs_total",
				Help: "Number of consolidation runs by terminal state",
			},
			[]string{"state", "dry_run"},
		),
		topupAmountTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_topup_amount_usd_total",
				Help: "Total USD moved by cross-bank top-ups per source and target",
			},
			[]string{"source_bank", "target_bank"},
		),
		bankBalanceGauge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "treasury_bank_main_balance_usd",
				Help: "Last observed Main account balance per bank",
			},
			[]string{"bank"},
		),
		pendingTransfers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "treasury_pending_transfers",
				Help: "Number of tracked in-flight cross-bank transfers",
			},
		),
		payoutMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_payout_matches_total",
				Help: "Number of payout reconciliation attempts by outcome",
			},
			[]string{"platform", "outcome"},
		),
	}

	reg.MustRegister(
		mtc.runsTotal,
		mtc.topupAmountTotal,
		mtc.bankBalanceGauge,
		mtc.pendingTransfers,
		mtc.payoutMatches,
	)

	return mtc
}

// RecordRun counts a finished run. Non-terminal states are ignored.
func (m *TreasuryPrometheusMetrics) RecordRun(run models.ConsolidationRun) {
	if m == nil || !run.State.Terminal() {
		return
	}

	dryRun := "false"
	if run.DryRun {
		dryRun = "true"
	}
	m.runsTotal.WithLabelValues(string(run.State), dryRun).Inc()

	for _, t := range run.TopupOutcome.Topups {
		amount, _ := t.Step.Amount.Float64()
		m.topupAmountTotal.WithLabelValues(t.Step.SourceBank, t.Step.TargetBank).Add(amount)
	}
}

func (m *TreasuryPrometheusMetrics) RecordSnapshot(snapshot models.BalanceSnapshot) {
	if m == nil {
		return
	}

	for _, b := range snapshot.Banks {
		if !b.Reachable() {
			continue
		}
		balance, _ := b.MainBalance.Float64()
		m.bankBalanceGauge.WithLabelValues(b.BankName).Set(balance)
	}
}

func (m *TreasuryPrometheusMetrics) SetPendingTransfers(n int) {
	if m == nil {
		return
	}

	m.pendingTransfers.Set(float64(n))
}

func (m *TreasuryPrometheusMetrics) RecordPayoutMatch(platform models.Platform, outcome string) {
	if m == nil {
		return
	}

	m.payoutMatches.WithLabelValues(string(platform), outcome).Inc()
}
