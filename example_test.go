package vinculo_test

import (
	"fmt"
	"log"
	"strconv"

	"github.com/petrijr/vinculo"
)

type Person struct {
	Name   string
	Height float64
}

// Example_forwardBinding demonstrates pushing model changes into an
// observable value, with a conversion in between.
func Example_forwardBinding() {
	person := &Person{Name: "Ada", Height: 1.6764}
	model := vinculo.MustWrap(person)

	display := vinculo.NewValue("")

	binding := vinculo.MustSelectPropOfObject(model, "Height").
		WithConverter(vinculo.FloatToString(2)).
		WithTargetProp(display).
		Bind()
	defer binding.Unbind()

	fmt.Println(display.Get())

	height, err := model.PropertyByName("Height")
	if err != nil {
		log.Fatal(err)
	}
	if err := height.Set(1.75); err != nil {
		log.Fatal(err)
	}
	fmt.Println(display.Get())

	// Output:
	// 1.68
	// 1.75
}

// Example_backSyncIf demonstrates a bidirectional binding whose backward
// direction only accepts values the predicate lets through.
func Example_backSyncIf() {
	person := &Person{Height: 1.75}
	model := vinculo.MustWrap(person)

	entry := vinculo.NewValue("")

	parseable := func(value any) bool {
		s, ok := value.(string)
		if !ok {
			return false
		}
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}

	binding := vinculo.MustSelectPropOfObject(model, "Height").
		WithConverter(vinculo.FloatToString(2)).
		WithTargetProp(entry).
		BackSyncIf(parseable, vinculo.StringToFloat()).
		Bind()
	defer binding.Unbind()

	entry.Set("not a number") // rejected by the predicate
	fmt.Println(person.Height)

	entry.Set("1.80")
	fmt.Println(person.Height)

	// Output:
	// 1.75
	// 1.8
}

// Example_observer demonstrates attaching metrics to a binding.
func Example_observer() {
	person := &Person{Name: "Ada"}
	model := vinculo.MustWrap(person)

	display := vinculo.NewValue("")

	var metrics vinculo.BasicMetrics

	binding := vinculo.MustSelectPropOfObject(model, "Name").
		WithConverter(vinculo.Identity()).
		WithTargetProp(display).
		WithObserver(&metrics).
		BackSync(vinculo.BackIdentity()).
		Bind()

	display.Set("Grace")
	binding.Unbind()

	snap := metrics.Snapshot()
	fmt.Printf("name=%s forward=%d back=%d active=%d\n",
		person.Name, snap.ForwardSyncs, snap.BackSyncs, snap.ActiveBindings)

	// Output:
	// name=Grace forward=2 back=1 active=0
}
