package vinculo

import (
	"testing"

	"github.com/petrijr/vinculo/internal/notify"
	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/petrijr/vinculo/pkg/vmodel"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Host string
	Port int
}

// stubSource is a minimal ActionSource for driving action-gated bindings.
type stubSource struct {
	actions notify.Hub[func()]
}

func (s *stubSource) AddActionListener(fn func()) observe.Subscription {
	return observe.NewSubscription(s.actions.Add(fn))
}

func (s *stubSource) fire() {
	for _, fn := range s.actions.Snapshot() {
		fn()
	}
}

func settingsModel(t *testing.T) (*settings, *vmodel.Object) {
	t.Helper()
	s := &settings{Host: "localhost", Port: 8080}
	obj, err := vmodel.Wrap(s)
	require.NoError(t, err)
	return s, obj
}

func hostProp(t *testing.T) vmodel.Property {
	t.Helper()
	_, obj := settingsModel(t)
	p, err := obj.PropertyByName("Host")
	require.NoError(t, err)
	return p
}

func TestSelectProp_NilPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "vinculo: nil source property", func() {
		SelectProp(nil)
	})
}

func TestSelectPropOfObject(t *testing.T) {
	t.Parallel()

	_, obj := settingsModel(t)

	b, err := SelectPropOfObject(obj, "Host")
	require.NoError(t, err)
	require.Equal(t, "Host", b.Source().Name())

	_, err = SelectPropOfObject(obj, "Nope")
	require.ErrorIs(t, err, vmodel.ErrPropertyNotFound, "unknown names fail at selection time")

	require.PanicsWithValue(t, "vinculo: nil object", func() {
		SelectPropOfObject(nil, "Host")
	})
}

func TestMustSelectPropOfObject(t *testing.T) {
	t.Parallel()

	_, obj := settingsModel(t)
	require.NotNil(t, MustSelectPropOfObject(obj, "Port"))
	require.Panics(t, func() { MustSelectPropOfObject(obj, "Nope") })
}

func TestChain_NilArgumentPanics(t *testing.T) {
	t.Parallel()

	src := hostProp(t)

	require.PanicsWithValue(t, "vinculo: nil forward converter", func() {
		SelectProp(src).WithConverter(nil)
	})

	require.PanicsWithValue(t, "vinculo: nil target property", func() {
		SelectProp(src).WithConverter(Identity()).WithTargetProp(nil)
	})

	stage := SelectProp(src).WithConverter(Identity()).WithTargetProp(observe.NewValue(""))

	require.PanicsWithValue(t, "vinculo: nil backward converter", func() {
		stage.BackSync(nil)
	})
	require.PanicsWithValue(t, "vinculo: nil back-sync predicate", func() {
		stage.BackSyncIf(nil, BackIdentity())
	})
	require.PanicsWithValue(t, "vinculo: nil backward converter", func() {
		stage.BackSyncIf(func(any) bool { return true }, nil)
	})
	require.PanicsWithValue(t, "vinculo: nil action source", func() {
		stage.BackSyncOnActionEventOf(nil, BackIdentity())
	})
	require.PanicsWithValue(t, "vinculo: nil backward converter", func() {
		stage.BackSyncOnActionEventOf(&stubSource{}, nil)
	})
}

func TestBackSyncPolicy_LastCallWins(t *testing.T) {
	t.Parallel()

	t.Run("action then always", func(t *testing.T) {
		t.Parallel()

		s, obj := settingsModel(t)
		dst := observe.NewValue("")
		src := &stubSource{}

		binding := MustSelectPropOfObject(obj, "Host").
			WithConverter(Identity()).
			WithTargetProp(dst).
			BackSyncOnActionEventOf(src, BackIdentity()).
			BackSync(BackIdentity()).
			Bind()
		defer binding.Unbind()

		dst.Set("db.internal")
		require.Equal(t, "db.internal", s.Host, "final policy is unconditional back-sync")

		s.Host = "overwritten-directly"
		src.fire()
		require.Equal(t, "overwritten-directly", s.Host,
			"the discarded action policy must not have registered a listener")
	})

	t.Run("always then action", func(t *testing.T) {
		t.Parallel()

		s, obj := settingsModel(t)
		dst := observe.NewValue("")
		src := &stubSource{}

		binding := MustSelectPropOfObject(obj, "Host").
			WithConverter(Identity()).
			WithTargetProp(dst).
			BackSync(BackIdentity()).
			BackSyncOnActionEventOf(src, BackIdentity()).
			Bind()
		defer binding.Unbind()

		dst.Set("db.internal")
		require.Equal(t, "localhost", s.Host, "plain target changes must not propagate")

		src.fire()
		require.Equal(t, "db.internal", s.Host, "action events propagate the current target value")
	})
}

func TestWithErrorHandler_ReturnsReceiver(t *testing.T) {
	t.Parallel()

	src := hostProp(t)
	pb := SelectProp(src).WithConverter(Identity())
	require.Same(t, pb, pb.WithErrorHandler(func(vmodel.Property, *observe.Value, error) {}))

	fx := pb.WithTargetProp(observe.NewValue(""))
	require.Same(t, fx, fx.WithErrorHandler(nil))
	require.Same(t, fx, fx.WithObserver(nil))
}
