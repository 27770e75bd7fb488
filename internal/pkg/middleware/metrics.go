package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 为 gin server 构建 prometheus 指标中间件
type MetricsBuilder struct {
	durationVec *prometheus.SummaryVec
	totalVec    *prometheus.CounterVec
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	durationVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:        "eshop_http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
	totalVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "eshop_http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)
	return &MetricsBuilder{durationVec: durationVec, totalVec: totalVec}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		method := ctx.Request.Method
		// 用路由模板而不是真实 URL，避免 /orders/123 这种高基数 label
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		b.durationVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		b.totalVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
