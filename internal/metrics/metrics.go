package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nithub_bookings_created_total",
		Help: "Total number of bookings successfully confirmed.",
	})

	BookingsCheckedOutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nithub_bookings_checked_out_total",
		Help: "Total number of bookings checked out.",
	})

	BookingsCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nithub_bookings_cancelled_total",
		Help: "Total number of bookings cancelled.",
	})

	BookingConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nithub_booking_conflicts_total",
		Help: "Total number of booking attempts rejected by a conflict check.",
	},
		[]string{"kind"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nithub_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DeskCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nithub_desk_cache_items",
		Help: "Current number of desks in the catalog cache.",
	})
)
