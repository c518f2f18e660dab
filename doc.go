// Package vinculo provides a small fluent builder for wiring observable
// model properties to observable UI values, in one or both directions.
//
// Vinculo is glue. It owns no event loop, no storage, and no widgets of its
// own: it connects a reflective model object (pkg/vmodel) to an observable
// value (pkg/observe) by registering listeners on both sides and converting
// values as they cross. The terminal widgets in pkg/tui expose their state as
// observable values, which makes them bindable without any widget-specific
// code here.
//
// # Core Concepts
//
// The vinculo programming model is intentionally small:
//
//  1. Model property
//  2. Target value
//  3. Builder chain
//  4. Back-sync policy
//  5. Binding
//
// # Model property
//
// A model property is an observable field of a wrapped struct. Wrapping is
// reflective: every exported field of a struct becomes a named property that
// can be read, written with type checking, and observed:
//
//	person := &Person{Name: "Ada"}
//	model := vinculo.MustWrap(person)
//	name, err := model.PropertyByName("Name")
//
// # Target value
//
// The UI side of a binding is an observe.Value, a mutable cell that notifies
// invalidation listeners when its content actually changes. Writing a value
// equal to the current one is a no-op, which is what lets a bidirectional
// binding converge instead of ping-ponging forever.
//
// # Builder chain
//
// Bindings are configured with a fixed chain of stages, each exposing only
// the legal next calls:
//
//	binding := vinculo.SelectProp(name).
//	    WithConverter(vinculo.Identity()).
//	    WithTargetProp(entry.TextProperty()).
//	    BackSync(vinculo.BackIdentity()).
//	    Bind()
//
// Configuration is eager and strict: nil arguments panic at the call site,
// and a chain that is missing its converter or target simply cannot be
// expressed. All side effects happen inside Bind.
//
// # Back-sync policy
//
// The model -> UI direction is always on. The UI -> model direction is
// governed by exactly one policy, chosen by the last policy call before
// Bind:
//
//   - BackSync: every target change propagates back.
//   - BackSyncIf: target changes propagate only while a predicate holds.
//   - BackSyncOnActionEventOf: nothing propagates until a widget fires an
//     action event (an entry submit, a button press).
//   - none of the above: the binding is forward-only.
//
// # Binding
//
// Bind installs the forward change listener, pushes the current model value
// into the target once, and then installs the backward side per the policy.
// The returned Binding is live. Its Subscription composes the teardown of
// both directions; Unbind (or Unsubscribe) detaches everything and is safe
// to call more than once.
//
// Converter and assignment errors are routed to the per-direction error
// handler when one was configured, and otherwise escalate as a panic in the
// goroutine that triggered the sync. There is no retry: a failed sync is
// simply skipped.
//
// Observers (LoggingObserver, BasicMetrics, or your own) can be attached to
// a binding for structured logging and counters without touching the sync
// path.
//
// For examples, see the /examples directory or the project README.
package vinculo
