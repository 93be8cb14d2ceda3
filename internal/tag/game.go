package tag

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
)

// Picker chooses the first tagged player of a round.
// IntN returns a uniformly distributed value in [0, n).
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a PCG-backed picker. A zero seed selects a time based seed,
// so every process gets a fresh sequence.
func NewPicker(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Summary describes a round, finished or in progress.
type Summary struct {
	ID          uuid.UUID
	Players     int
	Winner      int // -1 while nobody has won
	WinnerColor core.Color
	Ticks       int
	Duration    time.Duration // Simulated time, Ticks * FrameTime
	Transfers   int           // Tag changes including the first tag
}

// Game runs rounds of tag on a World: it steps the simulation, applies the
// tag-transfer rule and tracks the round state.
type Game struct {
	world  *World
	picker Picker
	state  RoundState

	roundID   uuid.UUID
	ticks     int
	transfers int
	winner    int
}

// NewGame starts a round with numPlayers players.
func NewGame(params Params, numPlayers int, picker Picker) (*Game, error) {
	if err := config.ValidatePlayers(numPlayers); err != nil {
		return nil, err
	}
	if picker == nil {
		picker = NewPicker(0)
	}
	g := &Game{
		world:  NewWorld(params, numPlayers),
		picker: picker,
	}
	g.startRound(numPlayers)
	return g, nil
}

// startRound rebuilds the roster for n players and opens a new round.
func (g *Game) startRound(n int) {
	g.world.Reset(n)
	g.state = RoundPlaying
	g.roundID = uuid.New()
	g.ticks = 0
	g.transfers = 0
	g.winner = noTag
}

// Step advances the simulation by one fixed tick.
//
// Players tick in roster order and the first one whose countdown hits zero
// ends the round on the spot; players after it do not move on that tick.
// Collisions are then tested per pair and only the first tick of an overlap
// triggers the tag rule. Intersection sets roll over on every call.
func (g *Game) Step() StepResult {
	var res StepResult
	players := g.world.Players()

	if g.state == RoundPlaying {
		g.ticks++
		for _, p := range players {
			p.Tick(g.world.params.FrameTime)
			if p.HasWon() {
				g.state = RoundEnded
				g.winner = p.id
				res.Events = append(res.Events, RoundEndEvent{Summary: g.Summary()})
				break
			}
		}
	}

	if g.state == RoundPlaying {
		for i := 0; i < len(players); i++ {
			a := players[i]
			for j := i + 1; j < len(players); j++ {
				b := players[j]
				if !a.rect.Intersects(b.rect) {
					continue
				}
				a.MarkIntersecting(b.id)
				b.MarkIntersecting(a.id)
				if !a.WasIntersecting(b.id) {
					if ev, ok := g.tag(a, b); ok {
						res.Events = append(res.Events, ev)
					}
				}
			}
		}
	}

	for _, p := range players {
		p.EndTick()
	}
	return res
}

// tag applies the transfer rule to a newly colliding pair.
func (g *Game) tag(a, b *Player) (TagEvent, bool) {
	from, ok := g.world.TaggedIndex()
	if !ok {
		to := a
		if g.picker.IntN(2) == 1 {
			to = b
		}
		return g.transfer(noTag, to), true
	}

	tagged := g.world.players[from]
	tagged.ResetSpeedToBase()

	switch tagged {
	case a:
		return g.transfer(from, b), true
	case b:
		return g.transfer(from, a), true
	default:
		return TagEvent{}, false
	}
}

func (g *Game) transfer(from int, to *Player) TagEvent {
	g.world.SetTagged(to.id)
	g.transfers++
	return TagEvent{Tick: g.ticks, From: from, To: to.id, Color: to.color}
}

// Restart begins a new round with the same roster size. It only has an
// effect once the current round has ended.
func (g *Game) Restart() bool {
	if g.state != RoundEnded {
		return false
	}
	g.startRound(g.world.NumPlayers())
	return true
}

// SetPlayerCount rebuilds the roster for n players and starts a fresh round.
func (g *Game) SetPlayerCount(n int) error {
	if err := config.ValidatePlayers(n); err != nil {
		return err
	}
	g.startRound(n)
	return nil
}

// Apply dispatches a simulation input. It reports whether the input changed
// the game; window-level actions are not handled here.
func (g *Game) Apply(in core.Input) (bool, error) {
	switch in.Action {
	case core.ActionMove:
		p := g.world.Player(in.Player)
		if p == nil || in.Dir == core.DirNone {
			return false, nil
		}
		p.SetDirection(in.Dir)
		return true, nil
	case core.ActionRestart:
		return g.Restart(), nil
	case core.ActionSetPlayers:
		if err := g.SetPlayerCount(in.Players); err != nil {
			return false, fmt.Errorf("tag: set players: %w", err)
		}
		return true, nil
	default:
		return false, nil
	}
}

// World returns the arena. Callers outside the simulation treat it as read-only.
func (g *Game) World() *World {
	return g.world
}

// State returns the round state.
func (g *Game) State() RoundState {
	return g.state
}

// Winner returns the winning player once the round has ended.
func (g *Game) Winner() (*Player, bool) {
	if g.state != RoundEnded {
		return nil, false
	}
	p := g.world.Player(g.winner)
	return p, p != nil
}

// Summary returns the current round's statistics.
func (g *Game) Summary() Summary {
	s := Summary{
		ID:        g.roundID,
		Players:   g.world.NumPlayers(),
		Winner:    g.winner,
		Ticks:     g.ticks,
		Duration:  time.Duration(float64(g.ticks) * g.world.params.FrameTime * float64(time.Second)),
		Transfers: g.transfers,
	}
	if p := g.world.Player(g.winner); p != nil {
		s.WinnerColor = p.color
	}
	return s
}
