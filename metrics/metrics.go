package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gs1scan/barcode"
)

var (
	DecodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1scan_decodes_total",
			Help: "Total number of barcode decodes by barcode type and outcome",
		},
		[]string{"type", "success"},
	)

	DecodeWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gs1scan_decode_warnings_total",
			Help: "Total number of warnings attached to decode results",
		},
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1scan_lookup_duration_seconds",
			Help:    "Duration of product catalog lookups in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)
)

// ObserveDecode はデコード結果を集計します。
func ObserveDecode(res *barcode.Result) {
	if res == nil {
		return
	}
	DecodesTotal.WithLabelValues(string(res.Type), strconv.FormatBool(res.Success)).Inc()
	if n := len(res.Warnings); n > 0 {
		DecodeWarnings.Add(float64(n))
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
