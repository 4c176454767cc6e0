package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestWriteTextfileFrom(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_events_total", Help: "test"})
	reg.MustRegister(c)
	c.Add(3)

	path := filepath.Join(t.TempDir(), "bank.prom")
	if err := WriteTextfileFrom(path, reg); err != nil {
		t.Fatalf("WriteTextfileFrom err=%v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "test_events_total 3") {
		t.Fatalf("unexpected textfile content:\n%s", data)
	}
}

func TestWriteTextfileIncludesBankCollectors(t *testing.T) {
	DepositsTotal.Add(0)
	LoginsTotal.WithLabelValues("ok").Add(0)

	path := filepath.Join(t.TempDir(), "bank.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile err=%v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"bank_deposits_total", "bank_logins_total", "bank_ledger_accounts"} {
		if !strings.Contains(string(data), name) {
			t.Errorf("textfile missing %s", name)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "bank.prom")
	if err := WriteTextfile(path); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
