package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/logger"
)

// RecordItem counts one converted or rejected item
func RecordItem(ctx context.Context, direction string, err error) {
	if err == nil {
		ItemsConverted.WithLabelValues(direction, OutcomeOK).Inc()
		return
	}
	ItemsConverted.WithLabelValues(direction, OutcomeFailed).Inc()
	reason := Reason(err)
	ItemFailures.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, LabelDirection, direction, LabelReason, reason)
}

// Reason maps an item error onto its failure label
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingMandatoryField):
		return ReasonMissingField
	case errors.Is(err, domain.ErrUnresolvedBlueprint):
		return ReasonUnresolvedBlueprint
	case errors.Is(err, domain.ErrExhaustedNameSpace):
		return ReasonExhaustedNames
	case errors.Is(err, domain.ErrExhaustedIDSpace):
		return ReasonExhaustedIDs
	case errors.Is(err, domain.ErrInventoryNotFound):
		return ReasonInventoryNotFound
	default:
		return ReasonOther
	}
}

// RecordFile counts one processed input file
func RecordFile(command string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	FilesProcessed.WithLabelValues(command, outcome).Inc()
}

// TrackBatch marks a batch in flight and returns the function that ends it
func TrackBatch(command string) func() {
	start := time.Now()
	BatchesInFlight.Inc()
	return func() {
		BatchesInFlight.Dec()
		BatchDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	}
}

// WriteTextfile writes every registered metric to path in the text exposition format
func WriteTextfile(ctx context.Context, path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf(ErrMsgWriteTextfile, path, err)
	}
	logger.FromContext(ctx).Info(LogMsgMetricsWritten, "path", path)
	return nil
}
