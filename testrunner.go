package pong

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Side   string  `json:"side,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated runs. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
//
//	{"steps": [
//		{"action": "toggle_ai", "side": "left"},
//		{"action": "press", "key": "w", "frames": 30},
//		{"action": "wait", "frames": 60},
//		{"action": "screenshot", "label": "after-move"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("pong: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("pong: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("pong: parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "keydown", "keyup", "press":
		if ParseKey(st.Key) == KeyNone {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	case "toggle_ai":
		if _, ok := parseSide(st.Side); !ok {
			return fmt.Errorf("unknown side %q", st.Side)
		}
	case "click", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseSide(s string) (Side, bool) {
	switch s {
	case "left", "1":
		return SideLeft, true
	case "right", "2":
		return SideRight, true
	default:
		return 0, false
	}
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called from Game.Update before input processing each frame.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "keydown":
		g.InjectKeyDown(ParseKey(st.Key))
	case "keyup":
		g.InjectKeyUp(ParseKey(st.Key))
	case "press":
		g.InjectKeyPress(ParseKey(st.Key), st.Frames)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "toggle_ai":
		side, _ := parseSide(st.Side)
		g.InjectToggleAI(side)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
