package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors registered on the default registry and written out by
// WriteTextfile.
var (
	// AccountsRegistered counts successful registrations.
	AccountsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_accounts_registered_total",
			Help: "Total number of customer records created",
		},
	)

	// LoginsTotal counts authentication attempts, labelled ok or failed.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_logins_total",
			Help: "Total number of authentication attempts by result",
		},
		[]string{"result"},
	)

	// DepositsTotal counts applied deposits.
	DepositsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_deposits_total",
			Help: "Total number of successful deposits",
		},
	)

	// WithdrawalsTotal counts withdrawals, labelled ok or declined.
	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_withdrawals_total",
			Help: "Total number of withdrawals by outcome (ok, declined)",
		},
		[]string{"outcome"},
	)

	// RejectedOperations counts domain errors by operation and error code.
	RejectedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_rejected_operations_total",
			Help: "Total number of operations rejected with a domain error",
		},
		[]string{"operation", "code"},
	)

	// LedgerAccounts tracks how many ids hold a balance.
	LedgerAccounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bank_ledger_accounts",
			Help: "Number of balance entries held by the ledger",
		},
	)
)
