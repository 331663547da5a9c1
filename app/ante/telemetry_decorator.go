package ante

import (
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const telemetryScope = "loom-ante"

// txInstruments lazily binds the otel instruments so the decorator picks up
// whichever meter provider InitTelemetry installed. With telemetry disabled
// the global provider is a no-op and recording costs nothing.
type txInstruments struct {
	once       sync.Once
	txTotal    metric.Int64Counter
	txDuration metric.Float64Histogram
	txGasUsed  metric.Int64Histogram
}

func (i *txInstruments) bind() {
	i.once.Do(func() {
		meter := otel.Meter(telemetryScope)
		i.txTotal, _ = meter.Int64Counter(
			"loom.tx.total",
			metric.WithDescription("Transactions processed by the ante chain"),
			metric.WithUnit("{transaction}"),
		)
		i.txDuration, _ = meter.Float64Histogram(
			"loom.tx.ante_duration",
			metric.WithDescription("Time spent in the ante chain per transaction"),
			metric.WithUnit("ms"),
		)
		i.txGasUsed, _ = meter.Int64Histogram(
			"loom.tx.ante_gas",
			metric.WithDescription("Gas consumed during ante processing"),
			metric.WithUnit("{gas}"),
		)
	})
}

// TelemetryDecorator records per-transaction metrics and wraps the rest of
// the ante chain in a span. It sits near the top of the chain so rejected
// transactions are counted too.
type TelemetryDecorator struct {
	instruments *txInstruments
}

// NewTelemetryDecorator creates a new TelemetryDecorator
func NewTelemetryDecorator() TelemetryDecorator {
	return TelemetryDecorator{instruments: &txInstruments{}}
}

// AnteHandle times the downstream decorators and records outcome metrics.
func (td TelemetryDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	td.instruments.bind()

	goCtx, span := otel.Tracer(telemetryScope).Start(ctx.Context(), "tx.ante")
	span.SetAttributes(
		attribute.Int64("block.height", ctx.BlockHeight()),
		attribute.Int("tx.msg.count", len(tx.GetMsgs())),
	)
	defer span.End()

	start := time.Now()
	newCtx, err := next(ctx.WithContext(goCtx), tx, simulate)

	status := "accepted"
	if err != nil {
		status = "rejected"
	}
	attrs := metric.WithAttributes(attribute.String("tx.status", status))

	if td.instruments.txTotal != nil {
		td.instruments.txTotal.Add(goCtx, 1, attrs)
	}
	if td.instruments.txDuration != nil {
		td.instruments.txDuration.Record(goCtx, float64(time.Since(start).Milliseconds()), attrs)
	}
	if td.instruments.txGasUsed != nil && newCtx.GasMeter() != nil {
		td.instruments.txGasUsed.Record(goCtx, int64(newCtx.GasMeter().GasConsumed()), attrs) // #nosec G115 - gas fits in int64
	}

	return newCtx, err
}
