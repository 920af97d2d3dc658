package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelMethod = "method"
	labelType   = "type"
	typeSuccess = "success"
	typeFailed  = "failed"
)

var (
	relayerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_requests",
		Help: "The total number of processed RequestLogged events (counter)",
	}, []string{labelType})

	relayerProofs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_proofs",
		Help: "The total number of submitted proofs (counter)",
	}, []string{labelType})

	requestTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "request_time",
		Help:    "A histogram of request processing duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelType})

	proofSubmitTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "proof_submit_time",
		Help:    "A histogram of proof submission duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelType})

	targetChainGettersTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "target_chain_getters_time",
		Help:    "A histogram of target chain getters duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelMethod, labelType})

	submittedTxCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "submitted_txs",
		Help: "The total number of submitted verification txs (counter)",
	}, []string{labelType})

	unsuccessfulTxsQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unsuccessful_txs",
		Help: "The total number of unsuccessful verification txs in the storage",
	})
)

func AddSuccessRequest(dur float64) {
	relayerRequests.With(prometheus.Labels{labelType: typeSuccess}).Inc()
	requestTime.With(prometheus.Labels{labelType: typeSuccess}).Observe(dur)
}

func AddFailedRequest(dur float64) {
	relayerRequests.With(prometheus.Labels{labelType: typeFailed}).Inc()
	requestTime.With(prometheus.Labels{labelType: typeFailed}).Observe(dur)
}

func AddSuccessProof(dur float64) {
	relayerProofs.With(prometheus.Labels{labelType: typeSuccess}).Inc()
	proofSubmitTime.With(prometheus.Labels{labelType: typeSuccess}).Observe(dur)
}

func AddFailedProof(dur float64) {
	relayerProofs.With(prometheus.Labels{labelType: typeFailed}).Inc()
	proofSubmitTime.With(prometheus.Labels{labelType: typeFailed}).Observe(dur)
}

func AddSuccessTargetChainGetter(method string, dur float64) {
	targetChainGettersTime.With(prometheus.Labels{
		labelMethod: method,
		labelType:   typeSuccess,
	}).Observe(dur)
}

func AddFailedTargetChainGetter(method string, dur float64) {
	targetChainGettersTime.With(prometheus.Labels{
		labelMethod: method,
		labelType:   typeFailed,
	}).Observe(dur)
}

func IncSuccessTxSubmitted() {
	submittedTxCounter.With(prometheus.Labels{labelType: typeSuccess}).Inc()
}

func IncFailedTxSubmitted() {
	submittedTxCounter.With(prometheus.Labels{labelType: typeFailed}).Inc()
}

func SetUnsuccessfulTxsSizeQueue(size int) {
	unsuccessfulTxsQueueSize.Set(float64(size))
}
