package vinculo

import (
	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/petrijr/vinculo/pkg/vmodel"
)

// Re-export key collaborator types so users don't need to dig into pkg/.

type (
	Subscription   = observe.Subscription
	Value          = observe.Value
	Object         = vmodel.Object
	Property       = vmodel.Property
	Change         = vmodel.Change
	ChangeListener = vmodel.ChangeListener
)

// Re-export common constructors and subscription helpers.

var (
	NewValue             = observe.NewValue
	NewSubscription      = observe.NewSubscription
	NoopSubscription     = observe.NoopSubscription
	CombineSubscriptions = observe.CombineSubscriptions

	Wrap     = vmodel.Wrap
	MustWrap = vmodel.MustWrap
)
