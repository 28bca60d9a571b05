package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated counts persisted products per kind.
	ProductsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	}, []string{"kind"})

	// StockAdjustments counts stock changes per kind and direction (add, remove).
	StockAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_adjustments_total",
		Help: "The total number of stock adjustments",
	}, []string{"kind", "direction"})

	// PersistenceFailures counts writes that were rolled back.
	PersistenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persistence_failures_total",
		Help: "The total number of product writes rolled back",
	}, []string{"kind"})
)
