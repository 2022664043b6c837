package fleet_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain runs all tests in the fleet_test package and checks for
// goroutine leaks after all tests complete. go-cache's janitor
// goroutine is reclaimed via runtime.SetFinalizer rather than an
// explicit Stop, so it is excluded here rather than drained per test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"))
}
