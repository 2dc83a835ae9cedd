package league_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/Black-And-White-Club/darts-league/integration_tests/testutils"
)

var testEnv *testutils.TestEnvironment

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		log.Println("Skipping league integration tests in short mode")
		os.Exit(0)
	}

	env, err := testutils.NewTestEnvironment(context.Background())
	if err != nil {
		log.Fatalf("Failed to set up test environment: %v", err)
	}
	testEnv = env

	code := m.Run()
	testEnv.Cleanup()
	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()
	if err := testEnv.Reset(); err != nil {
		t.Fatalf("Failed to reset database: %v", err)
	}
}
