package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	DispatchLatency = metric.NewHistogram("1m1s")
	RoutesAdded     = metric.NewCounter("1m1s")
	RoutesIgnored   = metric.NewCounter("1m1s")
	TablesSent      = metric.NewCounter("1m1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("hopsim:DispatchLatency (µs)", DispatchLatency)
	expvar.Publish("hopsim:RoutesAdded", RoutesAdded)
	expvar.Publish("hopsim:RoutesIgnored", RoutesIgnored)
	expvar.Publish("hopsim:TablesSent", TablesSent)
}
