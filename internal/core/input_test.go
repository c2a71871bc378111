package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"jump", ActionJump, true},
		{"duck", ActionDuck, true},
		{"pause", ActionPause, true},
		{"restart", ActionRestart, true},
		{"reset", ActionRestart, true},
		{"quit", ActionQuit, true},
		{"Jump", ActionNone, false},
		{"", ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAction(%q) = %v, %v; expected %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value is usable
	if f.Has(ActionJump) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionDuck)
	if !f.Has(ActionJump) || !f.Has(ActionDuck) || f.Has(ActionPause) {
		t.Errorf("unexpected actions %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) || !clone.Has(ActionDuck) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionDuck.String() != "Duck" {
		t.Errorf("ActionDuck.String() = %q", ActionDuck.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
