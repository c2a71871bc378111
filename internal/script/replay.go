package script

import (
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Outcome is the result of replaying a script.
type Outcome struct {
	Final    runner.World   // World after the last frame
	Finished []runner.World // World at each game over, in order
}

// Replay feeds the script's frames to game, one per tick.
// The game is reseeded with the script's seed first.
func Replay(game *runner.Game, s *Script) Outcome {
	game.Reset(s.Seed)

	var out Outcome
	for _, frame := range s.Frames() {
		wasOver := game.State().GameOver
		if state := game.Step(frame); state.GameOver && !wasOver {
			out.Finished = append(out.Finished, game.World())
		}
	}
	out.Final = game.World()
	return out
}
