package core

import "testing"

func TestInputFrameIntent(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel out", []Action{ActionLeft, ActionRight}, 0},
		{"unrelated action", []Action{ActionPause}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Intent(); got != tc.expected {
				t.Errorf("Intent() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionRight) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionRight) || !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}

	// Zero-value frame is usable
	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
