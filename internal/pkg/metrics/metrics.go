package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render outcomes of the check-in calendar
const (
	OutcomeRendered = "rendered"
	OutcomeSkipped  = "skipped"
)

var (
	calendarRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questboard_calendar_renders_total",
			Help: "Check-in calendar renders by outcome",
		},
		[]string{"outcome"},
	)
	checkIns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questboard_check_ins_total",
			Help: "Check-in attempts by result",
		},
		[]string{"result"},
	)
	expiredQuests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "questboard_quests_expired_total",
			Help: "Quests moved to EXPIRED by the expiry sweep",
		},
	)

	registerOnce sync.Once
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(calendarRenders, checkIns, expiredQuests)
	})
}

// CalendarRendered counts one calendar render
func CalendarRendered(outcome string) {
	calendarRenders.WithLabelValues(outcome).Inc()
}

// CheckIn counts one check-in attempt. result is "ok" or a short error reason.
func CheckIn(result string) {
	checkIns.WithLabelValues(result).Inc()
}

// QuestsExpired adds n swept quests
func QuestsExpired(n int64) {
	if n > 0 {
		expiredQuests.Add(float64(n))
	}
}

// Handler exposes the default registry in Prometheus text format
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
