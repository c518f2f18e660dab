package vinculo

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Direction identifies which half of a binding a sync event belongs to.
type Direction string

const (
	// DirectionForward is the model property -> target value direction.
	DirectionForward Direction = "forward"
	// DirectionBackward is the target value -> model property direction.
	DirectionBackward Direction = "backward"
)

// Observer receives callbacks from bindings for logging and metrics.
//
// Callbacks run synchronously on the goroutine that triggered the sync;
// implementations should be fast and non-blocking.
type Observer interface {
	// OnBind is called once at the end of Bind, after both directions are
	// installed and the initial forward push has completed.
	OnBind(b *Binding)

	// OnUnbind is called the first time the binding is torn down, via
	// Unbind or its Subscription.
	OnUnbind(b *Binding)

	// OnForwardSync is called after a successful model -> target sync.
	// value is the converted value written to the target.
	OnForwardSync(b *Binding, value any)

	// OnBackSync is called after a successful target -> model sync.
	// value is the converted value written to the source property.
	OnBackSync(b *Binding, value any)

	// OnSyncError is called when a converter or assignment fails, before
	// the direction's error handler (or the runtime fault escalation) runs.
	OnSyncError(b *Binding, dir Direction, err error)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnBind(b *Binding)                                {}
func (NoopObserver) OnUnbind(b *Binding)                              {}
func (NoopObserver) OnForwardSync(b *Binding, value any)              {}
func (NoopObserver) OnBackSync(b *Binding, value any)                 {}
func (NoopObserver) OnSyncError(b *Binding, dir Direction, err error) {}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnBind(b *Binding) {
	for _, o := range c.observers {
		o.OnBind(b)
	}
}

func (c *CompositeObserver) OnUnbind(b *Binding) {
	for _, o := range c.observers {
		o.OnUnbind(b)
	}
}

func (c *CompositeObserver) OnForwardSync(b *Binding, value any) {
	for _, o := range c.observers {
		o.OnForwardSync(b, value)
	}
}

func (c *CompositeObserver) OnBackSync(b *Binding, value any) {
	for _, o := range c.observers {
		o.OnBackSync(b, value)
	}
}

func (c *CompositeObserver) OnSyncError(b *Binding, dir Direction, err error) {
	for _, o := range c.observers {
		o.OnSyncError(b, dir, err)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs binding lifecycle and
// sync events using the provided slog.Logger. If logger is nil,
// slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnBind(b *Binding) {
	o.Logger.Info("binding_bound",
		slog.String("property", b.Source().Name()),
	)
}

func (o *LoggingObserver) OnUnbind(b *Binding) {
	o.Logger.Info("binding_unbound",
		slog.String("property", b.Source().Name()),
	)
}

func (o *LoggingObserver) OnForwardSync(b *Binding, value any) {
	o.Logger.Debug("forward_sync",
		slog.String("property", b.Source().Name()),
		slog.String("value_type", fmt.Sprintf("%T", value)),
	)
}

func (o *LoggingObserver) OnBackSync(b *Binding, value any) {
	o.Logger.Debug("back_sync",
		slog.String("property", b.Source().Name()),
		slog.String("value_type", fmt.Sprintf("%T", value)),
	)
}

func (o *LoggingObserver) OnSyncError(b *Binding, dir Direction, err error) {
	o.Logger.Error("sync_error",
		slog.String("property", b.Source().Name()),
		slog.String("direction", string(dir)),
		slog.Any("error", err),
	)
}

// BasicMetrics collects simple counters for binding activity.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	binds        atomic.Int64
	unbinds      atomic.Int64
	forwardSyncs atomic.Int64
	backSyncs    atomic.Int64
	syncErrors   atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	Binds          int64
	Unbinds        int64
	ActiveBindings int64

	ForwardSyncs int64
	BackSyncs    int64
	SyncErrors   int64
}

func (m *BasicMetrics) OnBind(b *Binding) {
	m.binds.Add(1)
}

func (m *BasicMetrics) OnUnbind(b *Binding) {
	m.unbinds.Add(1)
}

func (m *BasicMetrics) OnForwardSync(b *Binding, value any) {
	m.forwardSyncs.Add(1)
}

func (m *BasicMetrics) OnBackSync(b *Binding, value any) {
	m.backSyncs.Add(1)
}

func (m *BasicMetrics) OnSyncError(b *Binding, dir Direction, err error) {
	m.syncErrors.Add(1)
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	binds := m.binds.Load()
	unbinds := m.unbinds.Load()

	return BasicMetricsSnapshot{
		Binds:          binds,
		Unbinds:        unbinds,
		ActiveBindings: binds - unbinds,
		ForwardSyncs:   m.forwardSyncs.Load(),
		BackSyncs:      m.backSyncs.Load(),
		SyncErrors:     m.syncErrors.Load(),
	}
}
