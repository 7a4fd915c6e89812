package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	documentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ktdatacards",
			Name:      "documents_processed_total",
			Help:      "Source PDFs processed, by result (ok, failed, unidentified)",
		},
		[]string{"result"},
	)

	pagesRendered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ktdatacards",
			Name:      "pages_rendered_total",
			Help:      "Card pages rendered to images",
		},
	)

	cardsExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ktdatacards",
			Name:      "cards_extracted_total",
			Help:      "Cards extracted, by card type",
		},
		[]string{"card_type"},
	)

	classificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ktdatacards",
			Name:      "classification_failures_total",
			Help:      "Pages where no card name could be extracted",
		},
	)
)

// Init registers collectors.
func Init() {
	prometheus.MustRegister(documentsProcessed, pagesRendered, cardsExtracted, classificationFailures)
}

// Handler returns the http.Handler for /metrics
func Handler() http.Handler { return promhttp.Handler() }

func IncDocument(result string) { documentsProcessed.WithLabelValues(result).Inc() }

func AddPagesRendered(n int) { pagesRendered.Add(float64(n)) }

func IncCard(cardType string) { cardsExtracted.WithLabelValues(cardType).Inc() }

func IncClassificationFailure() { classificationFailures.Inc() }
