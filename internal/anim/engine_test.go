package anim

import (
	"reflect"
	"testing"
)

func TestEngineRemovesFinished(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0, 0)

	short := &stepper{name: "short", lifeFor: 1}
	long := &stepper{name: "long", lifeFor: 3}
	e.Schedule(short)
	e.Schedule(long)

	e.Update(ctx, 0.1)
	if e.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", e.Len())
	}
	if e.active[0] != Animation(long) {
		t.Error("surviving animation should be long")
	}

	e.Update(ctx, 0.1)
	e.Update(ctx, 0.1)
	if e.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", e.Len())
	}
	if len(short.steps) != 1 {
		t.Errorf("finished animation updated %d times, expected 1", len(short.steps))
	}
}

func TestEngineSnapshotRule(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0, 0)

	child := &stepper{name: "child"}
	parent := &stepper{name: "parent", onFirst: func(Context) { e.Schedule(child) }}
	e.Schedule(parent)

	e.Update(ctx, 0.1) // frame N
	if len(child.steps) != 0 {
		t.Errorf("child updated %d times in the frame it was scheduled", len(child.steps))
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", e.Len())
	}

	e.Update(ctx, 0.1) // frame N+1
	if len(child.steps) != 1 {
		t.Errorf("child updated %d times in frame N+1, expected 1", len(child.steps))
	}
}

func TestEngineDrawOrder(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0, 0)

	var order []string
	e.Schedule(&stepper{name: "a", log: &order})
	e.Schedule(&stepper{name: "b", log: &order})
	e.Schedule(&stepper{name: "c", log: &order, lifeFor: 1})

	e.Draw(ctx, &recordSurface{})
	if !reflect.DeepEqual(order, []string{"a", "b", "c"}) {
		t.Errorf("draw order = %v, expected insertion order", order)
	}

	order = nil
	e.Update(ctx, 0.1)
	e.Draw(ctx, &recordSurface{})
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("draw order after update = %v, finished animation should not draw", order)
	}
}

func TestEngineSlicesLongDelta(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0.25, 0)

	p := &stepper{name: "p"}
	e.Schedule(p)
	e.Update(ctx, 1.0)

	if len(p.steps) != 4 {
		t.Fatalf("got %d steps, expected 4: %v", len(p.steps), p.steps)
	}
	for i, s := range p.steps {
		if s > 0.25 {
			t.Errorf("step %d = %v exceeds the max step", i, s)
		}
	}
}

func TestEngineSlicingStopsAtFinish(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0.1, 0)

	p := &stepper{name: "p", lifeFor: 2}
	e.Schedule(p)
	e.Update(ctx, 1.0)

	if len(p.steps) != 2 {
		t.Errorf("got %d steps, expected slicing to stop after finish", len(p.steps))
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", e.Len())
	}
}

func TestEngineStallGuard(t *testing.T) {
	ctx := newTestContext()
	e := NewEngine(0.1, 3)

	p := &stepper{name: "p"}
	e.Schedule(p)
	e.Update(ctx, 10)

	if len(p.steps) != 3 {
		t.Errorf("got %d steps, expected at most 3", len(p.steps))
	}
}

func TestEngineScheduleNil(t *testing.T) {
	e := NewEngine(0, 0)
	e.Schedule(nil)
	if e.Len() != 0 {
		t.Error("nil animation should not be scheduled")
	}
}

func TestEngineClear(t *testing.T) {
	e := NewEngine(0, 0)
	e.Schedule(&stepper{})
	e.Clear()
	if e.Len() != 0 {
		t.Error("Clear should empty the active set")
	}
}
