package sim

// EventKind classifies settlement events.
type EventKind int

const (
	// EventSettled reports a settled leg; for sells, Trade carries the
	// realized trade derived from it.
	EventSettled EventKind = iota
	// EventRejected reports an order discarded by the affordability guard.
	EventRejected
)

// Event is one observable settlement outcome, pushed to the configured sink.
// The engine and ledger never format or log; the reporting layer owns that.
type Event struct {
	Kind    EventKind
	Leg     Order
	Trade   *RealizedTrade // sells only
	Balance float64        // balance after the event
	Reason  string         // rejections only
}

// EventSink receives settlement and diagnostic events.
type EventSink interface {
	OnEvent(Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

// MultiSink fans each event out to every sink in order.
type MultiSink []EventSink

func (m MultiSink) OnEvent(ev Event) {
	for _, s := range m {
		s.OnEvent(ev)
	}
}
