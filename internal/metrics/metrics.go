package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"slot_machine/internal/model"
)

const namespace = "slot_machine"

// Общие метки
const labelPosition, labelSymbol = "position", "symbol"

// Metrics Счетчики спинов со своим реестром
type Metrics struct {
	reg *prometheus.Registry

	spins       prometheus.Counter
	wins        prometheus.Counter
	symbolDraws *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New регистрирует метрики в новом реестре вместе с go- и process-коллекторами
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		spins: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "spins_total", Help: "Количество спинов",
		}),
		wins: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "wins_total", Help: "Количество выигрышных спинов",
		}),
		symbolDraws: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "symbol_draws_total", Help: "Выпадения символов по позициям",
		}, []string{labelPosition, labelSymbol}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "spin_duration_seconds", Help: "Время спина вместе с ожиданием воркера",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

// ObserveSpin учитывает исход и длительность спина
func (m *Metrics) ObserveSpin(res model.SpinResult, took time.Duration) {
	m.spins.Inc()
	if res.Win {
		m.wins.Inc()
	}
	for pos, sym := range res.Outcome {
		m.symbolDraws.With(prometheus.Labels{
			labelPosition: strconv.Itoa(pos),
			labelSymbol:   string(sym),
		}).Inc()
	}
	m.duration.Observe(took.Seconds())
}

// Registry реестр для сбора и тестов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
