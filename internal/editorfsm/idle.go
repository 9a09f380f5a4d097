package editorfsm

// Idle is the state a Machine started with no footprint bound sits in;
// every event is ignored until ProcessChangeCurrentFootprint supplies one
// and the Machine transitions to Select.
type Idle struct {
	Base
}

func (*Idle) Name() string { return "Idle" }
