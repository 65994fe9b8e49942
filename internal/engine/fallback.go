package engine

import (
	"fmt"

	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

// fallbackEngine stands in when no constructor exists for a game type.
// It satisfies the full contract and renders a notice so the failure is
// visible on screen rather than fatal.
type fallbackEngine struct {
	requested GameType
	cfg       Config
	state     State
}

func newFallback(t GameType, cfg Config) Engine {
	return &fallbackEngine{
		requested: t,
		cfg:       cfg,
		state: State{
			Message: fmt.Sprintf("unknown game type %q", t),
		},
	}
}

func (f *fallbackEngine) Type() GameType             { return f.requested }
func (f *fallbackEngine) Start()                     {}
func (f *fallbackEngine) Pause()                     { f.state.Paused = true }
func (f *fallbackEngine) Resume()                    { f.state.Paused = false }
func (f *fallbackEngine) Reset()                     {}
func (f *fallbackEngine) State() State               { return f.state }
func (f *fallbackEngine) HandleInput(ev input.Event) {}
func (f *fallbackEngine) Update(dt float64)          {}

func (f *fallbackEngine) Render(q *render.Queue) {
	q.Add(render.NewText("fallback-title", f.cfg.Width/2, f.cfg.Height/2,
		"UNKNOWN GAME TYPE", "#ff5555"))
	q.Add(render.NewText("fallback-detail", f.cfg.Width/2, f.cfg.Height/2+2,
		f.state.Message, "#aaaaaa"))
}
