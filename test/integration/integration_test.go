//go:build integration

// Package integration drives the API end to end through Gherkin features:
// a real router over an in-memory database, exercised with plain HTTP.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "bk-finance-api",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format: "pretty",
			Paths:  []string{"features"},
			Output: colors.Colored(os.Stdout),
			// Scenarios share one database, so they run one at a
			// time in file order.
			Concurrency: 1,
			Randomize:   0,
			Strict:      true,
			Tags:        os.Getenv("GODOG_TAGS"),
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
