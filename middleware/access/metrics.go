package access

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores do servidor. Registre em um registry próprio
// para não colidir com o default em testes.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rejected *prometheus.CounterVec
	reg      *prometheus.Registry
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcloud_http_requests_total",
			Help: "Total HTTP responses served, by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wordcloud_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcloud_http_rejected_total",
			Help: "Requests rejected before reaching the file server, by reason.",
		}, []string{"reason"}),
		reg: reg,
	}
	reg.MustRegister(m.requests, m.duration, m.rejected)
	return m
}

func (m *Metrics) Observe(ev Event) {
	m.requests.WithLabelValues(ev.Method, strconv.Itoa(ev.Status)).Inc()
	m.duration.WithLabelValues(ev.Method).Observe(ev.Duration.Seconds())
}

// Reject conta uma requisição recusada ("ratelimit", "busy"). Aceita
// receiver nil.
func (m *Metrics) Reject(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// TrackInFlight expõe como gauge o número de requisições em atendimento.
func (m *Metrics) TrackInFlight(inUse func() int) error {
	return m.reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "wordcloud_http_in_flight_requests",
		Help: "Requests currently holding a serving slot.",
	}, func() float64 { return float64(inUse()) }))
}

// Handler expõe o registry no formato de exposição do Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
