package scheduler

import (
	"testing"

	"go.uber.org/goleak"
)

// Stop must leave no sweep goroutine behind
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
