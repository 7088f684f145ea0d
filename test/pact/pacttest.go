//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "ecommerce-website"
	ConsumerName = "storefront-mobile"

	StateSessionActive = "a logged-in session exists"
	StateOrderExists   = "an order for the session owner exists"
	StateAnonymous     = "no session exists"

	SessionToken  = "pact-session-token"
	OwnerUsername = "pact-user"
	OwnerEmail    = "pact-user@example.com"
)

// OrderDate is a far-future Friday so date validation always accepts it.
const OrderDate = "2099-01-02"

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the mobile consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload provides stable request data for order interactions.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"date":     OrderDate,
		"time":     "10 AM",
		"location": "Colombo",
		"product":  "Phone",
		"quantity": 2,
		"message":  "leave at the gate",
	}
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve caller for project root")
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
