package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/internal/game"
)

const historyFrames = 120

// Source is what the overlay inspects.
type Source interface {
	Stats() game.Stats
	Airplane() game.Body
	Storage() *ecs.Storage
}

// Overlay owns the ImGui backend and the panels drawn through it.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[InputState]

	source  Source
	history *FrameHistory
	timer   *FrameTimer
}

// New creates the ImGui context and its ebiten window. It must be called
// before ebiten.RunGame.
func New(title string, width, height int, source Source) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Panel](registry)
	storage := ecs.NewStorage(registry)

	o := &Overlay{
		backend: backend,
		storage: storage,
		input:   ecs.NewSingleton[InputState](storage),
		source:  source,
		history: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
	}

	storage.Spawn(Panel{Title: "Game", Render: o.renderGame})
	storage.Spawn(Panel{Title: "Systems", Render: o.renderSystems})
	storage.Spawn(Panel{Title: "Storage", Render: o.renderStorage})

	o.scheduler = ecs.NewScheduler(storage)
	o.scheduler.Register(&PanelSystem{})

	return o
}

// Update builds this frame's widgets. Call it once per ebiten Update.
func (o *Overlay) Update() {
	d := o.timer.Delta()
	o.history.Add(d)

	o.backend.BeginFrame()
	o.scheduler.Once(d.Seconds())
	o.backend.EndFrame()
}

// WantsKeyboard reports whether an ImGui widget has keyboard focus.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

func (o *Overlay) renderGame() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

	if imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		bounds := playfield(o.source.Storage())
		for _, line := range statLines(o.source.Stats(), bounds, o.source.Airplane()) {
			imgui.Text(line)
		}

		imgui.Separator()
		imgui.Text("Frame time (ms)")
		if samples := o.history.Samples(); len(samples) > 0 {
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
		}
		imgui.Text(fmtFPS(o.history))
	}
	imgui.End()
}

func (o *Overlay) renderSystems() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))

	if imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		table("SystemsTable", []string{"System", "Runs", "Avg", "Max", "Last"}, systemRows(o.source.Stats().Scheduler))
	}
	imgui.End()
}

func (o *Overlay) renderStorage() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 400), imgui.CondOnce, imgui.NewVec2(0, 0))

	if imgui.BeginV("Storage", nil, imgui.WindowFlagsNone) {
		stats := o.source.Storage().CollectStats()
		table("ColumnsTable", []string{"Component", "Count"}, columnRows(stats))

		if imgui.TreeNodeStr("Singletons") {
			for _, name := range stats.SingletonTypes {
				imgui.BulletText(name)
			}
			imgui.TreePop()
		}
	}
	imgui.End()
}

func table(id string, headers []string, rows [][]string) {
	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, int32(len(headers)), flags, imgui.NewVec2(0, 0), 0) {
		return
	}

	for _, h := range headers {
		imgui.TableSetupColumn(h)
	}
	imgui.TableHeadersRow()

	for _, row := range rows {
		imgui.TableNextRow()
		for _, cell := range row {
			imgui.TableNextColumn()
			imgui.Text(cell)
		}
	}

	imgui.EndTable()
}
