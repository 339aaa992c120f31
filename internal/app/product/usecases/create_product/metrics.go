package create_product

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codeCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "procat_product_code_collisions_total",
		Help: "Product code candidates rejected because another product already holds them.",
	})

	codeExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "procat_product_code_exhausted_total",
		Help: "Product creations that gave up after running out of code attempts.",
	})
)
