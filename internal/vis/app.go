package vis

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacika/mapf-het-research/internal/algo"
	"github.com/elektrokombinacika/mapf-het-research/internal/core"
	"github.com/elektrokombinacika/mapf-het-research/internal/sim"
)

// App is the interactive live viewer: it steps an Orchestrator and
// redraws the fleet every frame, replacing the teacher's CBS-tree
// debugger with a plain play/pause/step transport over the
// tick-synchronous simulation.
type App struct {
	fleet   *core.Fleet
	orch    *sim.Orchestrator
	camera  *Camera
	log     zerolog.Logger
	playing bool
	fitDone bool
}

// NewApp builds a live viewer over fleet, driven by orch.
func NewApp(fleet *core.Fleet, orch *sim.Orchestrator, log zerolog.Logger) *App {
	return &App{fleet: fleet, orch: orch, camera: NewCamera(), log: log}
}

// Run starts the viewer's event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	pointerTag := new(int)
	focusTag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			if !a.fitDone {
				a.camera.FitGrid(a.fleet.Grid.W, a.fleet.Grid.H, float32(e.Size.X), float32(e.Size.Y), 40)
				a.fitDone = true
			}

			event.Op(gtx.Ops, focusTag)

			area := clip.Rect(image.Rect(0, 0, e.Size.X, e.Size.Y)).Push(gtx.Ops)
			event.Op(gtx.Ops, pointerTag)
			area.Pop()
			for {
				ev, ok := gtx.Event(pointer.Filter{Target: pointerTag, Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					a.camera.HandleEvent(gtx, pe)
				}
			}
			for {
				ev, ok := gtx.Event(key.Filter{Focus: focusTag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKey(ke)
				}
			}

			a.draw(gtx)
			e.Frame(gtx.Ops)

			if a.playing && !a.fleet.AllArrived() {
				if err := a.orch.Step(); err != nil {
					a.log.Error().Err(err).Int("tick", a.orch.Tick()).Msg("simulation failed")
					a.playing = false
				}
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKey(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playing = !a.playing
	case key.NameRightArrow:
		if !a.fleet.AllArrived() {
			if err := a.orch.Step(); err != nil {
				a.log.Error().Err(err).Msg("step failed")
			}
		}
	}
}

func (a *App) draw(gtx layout.Context) {
	paint.Fill(gtx.Ops, color.NRGBA{R: 20, G: 22, B: 26, A: 255})

	DrawGrid(gtx, a.camera, a.fleet.Grid.W, a.fleet.Grid.H)

	n := len(a.fleet.Agents)
	for _, ag := range a.fleet.Agents {
		col := GenColor(ag.ID, n)
		DrawTrail(gtx, ag.PathHistory, col, a.camera)
		DrawDestination(gtx, ag.Destination, col, a.camera)
		DrawAircraft(gtx, core.Point{X: ag.X, Y: ag.Y}, col, a.camera)
		if coll, _ := algo.WillCollide(ag); coll {
			DrawConflictMarker(gtx, core.Point{X: ag.X, Y: ag.Y}, a.camera)
		}
	}
}
