// Package script loads recorded input scripts and replays them headlessly.
//
// A script is a YAML document:
//
//	seed: 42
//	ticks: 600
//	events:
//	  - {tick: 10, action: jump}
//	  - {tick: 200, action: duck, held: 30}
//
// Event ticks are zero-based frame indexes. A duck event stays held for
// `held` consecutive frames (one if omitted); other actions are edges.
package script

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid input script")

// Event is one scripted input.
type Event struct {
	Tick   int    `yaml:"tick"`
	Action string `yaml:"action"`
	Held   int    `yaml:"held,omitempty"`
}

// Script is a deterministic input recording.
type Script struct {
	Seed   int64   `yaml:"seed"`
	Ticks  int     `yaml:"ticks"`
	Events []Event `yaml:"events"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: cannot parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem that would make the script unplayable.
func (s *Script) Validate() error {
	var problems []error
	if s.Ticks <= 0 {
		problems = append(problems, fmt.Errorf("ticks must be positive, got %d", s.Ticks))
	}

	for i, ev := range s.Events {
		action, ok := core.ParseAction(ev.Action)
		switch {
		case !ok || action == core.ActionQuit:
			problems = append(problems, fmt.Errorf("events[%d]: unknown action %q", i, ev.Action))
		case ev.Held < 0:
			problems = append(problems, fmt.Errorf("events[%d]: held must not be negative, got %d", i, ev.Held))
		case ev.Held > 1 && action != core.ActionDuck:
			problems = append(problems, fmt.Errorf("events[%d]: only duck can be held", i))
		}
		if ev.Tick < 0 || (s.Ticks > 0 && ev.Tick >= s.Ticks) {
			problems = append(problems, fmt.Errorf("events[%d]: tick %d outside [0, %d)", i, ev.Tick, s.Ticks))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("script: %w: %w", ErrInvalidScript, errors.Join(problems...))
}

// Frames expands the events into one input frame per tick.
// Held ducks are clipped at the end of the script.
func (s *Script) Frames() []core.InputFrame {
	frames := make([]core.InputFrame, s.Ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}

	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	for _, ev := range events {
		action, ok := core.ParseAction(ev.Action)
		if !ok || action == core.ActionQuit {
			continue
		}
		span := 1
		if action == core.ActionDuck && ev.Held > 1 {
			span = ev.Held
		}
		for t := ev.Tick; t < ev.Tick+span && t < len(frames); t++ {
			if t >= 0 {
				frames[t].Set(action)
			}
		}
	}
	return frames
}

// Idle returns a script with no input.
func Idle(seed int64, ticks int) *Script {
	return &Script{Seed: seed, Ticks: ticks}
}
