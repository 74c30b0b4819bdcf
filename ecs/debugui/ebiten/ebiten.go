// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/yaecs/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game around a World. Each ebiten update opens an
// ImGui frame, ticks the world (whose ImguiSystem defers the render
// functions to the end of the tick) and closes the frame.
type Game struct {
	World *ecs.World

	// DrawWorld, if set, draws game content beneath the ImGui overlay.
	DrawWorld func(screen *ebiten.Image)
}

// NewGame creates the ImGui window and stores its backend as a world global.
func NewGame(world *ecs.World, title string, width, height int) *Game {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	ecs.AddGlobal(world, ImguiBackend{EbitenBackend: backend})
	return &Game{World: world}
}

func (g *Game) backend() *ImguiBackend {
	return ecs.GetGlobalMut[ImguiBackend](g.World)
}

func (g *Game) Update() error {
	g.backend().BeginFrame()
	g.World.Update()
	g.backend().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}
	g.backend().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
