package dispatch

import (
	"testing"

	"github.com/dshills/glint/internal/input/action"
)

func TestRunMatchedEntry(t *testing.T) {
	var got Context
	tbl := NewTable().Handle(action.Submit, func(ctx Context) bool {
		got = ctx
		return true
	})

	if !tbl.Run(action.Submit, true) {
		t.Fatal("Run should report consumed")
	}
	if got.Action != action.Submit || !got.Active {
		t.Errorf("Context = %+v", got)
	}
}

func TestRunUnmatchedIsNotError(t *testing.T) {
	tbl := NewTable()
	if tbl.Run(action.Cancel, true) {
		t.Error("unmatched action must report unconsumed")
	}
}

func TestHandleFuncAlwaysConsumes(t *testing.T) {
	called := false
	tbl := NewTable().HandleFunc(action.Cancel, func(Context) { called = true })

	if !tbl.Run(action.Cancel, true) {
		t.Error("HandleFunc entry must report consumed")
	}
	if !called {
		t.Error("handler not invoked")
	}
}

// Ordinary handlers only fire on the newly-confirmed frame.
func TestOrdinaryHandlerSkipsInactive(t *testing.T) {
	calls := 0
	tbl := NewTable().HandleFunc(action.Press, func(Context) { calls++ })

	if tbl.Run(action.Press, false) {
		t.Error("inactive delivery to ordinary handler must report unconsumed")
	}
	if calls != 0 {
		t.Error("ordinary handler fired on inactive delivery")
	}

	tbl.Run(action.Press, true)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

// While-held handlers fire every frame the action is down.
func TestWhileHeldHandler(t *testing.T) {
	var actives []bool
	tbl := NewTable().HandleHeld(action.Press, func(ctx Context) bool {
		actives = append(actives, ctx.Active)
		return true
	})

	tbl.Run(action.Press, false)
	tbl.Run(action.Press, false)
	tbl.Run(action.Press, true)

	want := []bool{false, false, true}
	if len(actives) != len(want) {
		t.Fatalf("fired %d times, want %d", len(actives), len(want))
	}
	for i := range want {
		if actives[i] != want[i] {
			t.Errorf("call %d active = %v, want %v", i, actives[i], want[i])
		}
	}
}

func TestHandleReplacesEarlierEntry(t *testing.T) {
	first, second := 0, 0
	tbl := NewTable().
		HandleFunc(action.Press, func(Context) { first++ }).
		HandleFunc(action.Press, func(Context) { second++ })

	tbl.Run(action.Press, true)
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want rebinding to replace", first, second)
	}
}

func TestDeriveFallsBack(t *testing.T) {
	baseCalls, derivedCalls := 0, 0

	base := NewTable().
		HandleFunc(action.Press, func(Context) { baseCalls++ }).
		HandleFunc(action.Cancel, func(Context) { baseCalls++ })

	derived := Derive(base).
		HandleFunc(action.Press, func(Context) { derivedCalls++ })

	// Overridden entry runs the derived handler.
	derived.Run(action.Press, true)
	if derivedCalls != 1 || baseCalls != 0 {
		t.Errorf("override: derived=%d base=%d", derivedCalls, baseCalls)
	}

	// Unbound entry falls back to the parent.
	derived.Run(action.Cancel, true)
	if baseCalls != 1 {
		t.Errorf("fallback: base=%d, want 1", baseCalls)
	}

	if !derived.Has(action.Cancel) {
		t.Error("Has should see inherited entries")
	}
	if derived.Has(action.Copy) {
		t.Error("Has should not invent entries")
	}
}
