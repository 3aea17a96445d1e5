package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adminpanel/logger"
	"adminpanel/models"
)

var (
	proxyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adminpanel_proxy_requests_total",
			Help: "Requests forwarded to the backend by the dev proxy",
		},
		[]string{"method", "status"},
	)

	proxyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adminpanel_proxy_request_duration_seconds",
			Help:    "Duration of proxied backend requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Options 개발 프록시 설정
type Options struct {
	// Target 백엔드 주소 (예: http://localhost:3000)
	Target string
	// Prefix 프록시할 경로 접두사 (예: /api)
	Prefix string
	// StripPrefix 가 true 면 백엔드로 보낼 때 Prefix 를 제거한다.
	StripPrefix bool
}

// New Prefix 이하 요청을 Target 으로 전달하는 핸들러
func New(opts Options) (http.Handler, error) {
	target, err := url.Parse(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("parse proxy target: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("proxy target must be an absolute URL: %q", opts.Target)
	}
	prefix := "/" + strings.Trim(opts.Prefix, "/")

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if opts.StripPrefix && prefix != "/" {
				path := strings.TrimPrefix(pr.In.URL.Path, prefix)
				if !strings.HasPrefix(path, "/") {
					path = "/" + path
				}
				pr.Out.URL.Path = singleJoin(target.Path, path)
				pr.Out.URL.RawPath = ""
			}
			// changeOrigin
			pr.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WithFields(map[string]interface{}{
				"path":   r.URL.Path,
				"target": target.String(),
				"error":  err.Error(),
			}).Error("Proxy request failed")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(models.ErrorResponse("No se pudo conectar con el servidor", err))
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		rp.ServeHTTP(sw, r)
		proxyRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		proxyRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	}), nil
}

func singleJoin(base, path string) string {
	if base == "" || base == "/" {
		return path
	}
	return strings.TrimRight(base, "/") + path
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
