package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/engine"
)

// errBadScript is returned for malformed --input scripts.
var errBadScript = errors.New("bad input script")

// maxScriptTicks bounds a script so a typo cannot spin for hours.
const maxScriptTicks = 1_000_000

// parseScript turns an input script into one PlayerInput per tick.
//
// A script is a comma-separated list of steps. Each step names the keys
// held during that tick (w s a d q e, or "." for none) and may repeat with
// a "*N" suffix: "w*20,we*5,." walks 20 ticks, walks and turns for 5, then
// idles once.
func parseScript(script string) ([]engine.PlayerInput, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var inputs []engine.PlayerInput
	for _, step := range strings.Split(script, ",") {
		keys, count, err := splitStep(strings.TrimSpace(step))
		if err != nil {
			return nil, err
		}

		var in engine.PlayerInput
		for _, k := range keys {
			switch k {
			case 'w':
				in.Forward = true
			case 's':
				in.Backward = true
			case 'a':
				in.Left = true
			case 'd':
				in.Right = true
			case 'q':
				in.TurnLeft = true
			case 'e':
				in.TurnRight = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: unknown key %q in step %q", errBadScript, k, step)
			}
		}

		if len(inputs)+count > maxScriptTicks {
			return nil, fmt.Errorf("%w: more than %d ticks", errBadScript, maxScriptTicks)
		}
		for range count {
			inputs = append(inputs, in)
		}
	}
	return inputs, nil
}

// splitStep separates the keys of a step from its repeat count.
func splitStep(step string) (string, int, error) {
	keys, rep, found := strings.Cut(strings.ToLower(step), "*")
	if keys == "" {
		return "", 0, fmt.Errorf("%w: empty step", errBadScript)
	}
	if !found {
		return keys, 1, nil
	}

	count, err := strconv.Atoi(rep)
	if err != nil || count < 1 {
		return "", 0, fmt.Errorf("%w: bad repeat count %q", errBadScript, rep)
	}
	return keys, count, nil
}
