package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewAccessLogWriter opens a rolling access log at path, retained 14 days.
func NewAccessLogWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  100, // megabytes
		MaxAge:   14,  // days
	}
}

// AccessLog writes one comma-delimited line per request:
// ts,method,path,status,bytes,latency_ms
func AccessLog(out io.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			fmt.Fprintf(out, "%s,%s,%s,%d,%d,%.3f\n",
				start.UTC().Format(time.RFC3339),
				r.Method,
				r.URL.Path,
				ww.Status(),
				ww.BytesWritten(),
				float64(time.Since(start).Microseconds())/1000.0,
			)
		})
	}
}
