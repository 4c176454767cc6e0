package bank

import (
	"abcbank/internal/metrics"
)

func recordRegistered() {
	metrics.AccountsRegistered.Inc()
}

func recordLogin(ok bool) {
	result := "failed"
	if ok {
		result = "ok"
	}
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

func recordDeposit() {
	metrics.DepositsTotal.Inc()
}

func recordWithdrawal(declined bool) {
	outcome := "ok"
	if declined {
		outcome = "declined"
	}
	metrics.WithdrawalsTotal.WithLabelValues(outcome).Inc()
}

func recordRejected(operation string, err error) {
	code := "UNKNOWN"
	if de, ok := AsDomainError(err); ok {
		code = de.Code()
	}
	metrics.RejectedOperations.WithLabelValues(operation, code).Inc()
}

func recordLedgerSize(n int) {
	metrics.LedgerAccounts.Set(float64(n))
}
