package debugui

import (
	"fmt"
	"time"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/internal/game"
)

// playfield reads the world bounds singleton, or the zero value when the
// world has none.
func playfield(storage *ecs.Storage) game.Bounds {
	var bounds *game.Bounds
	if !storage.ReadSingleton(&bounds) {
		return game.Bounds{}
	}
	return *bounds
}

// statLines is the text of the "Game" panel.
func statLines(stats game.Stats, bounds game.Bounds, airplane game.Body) []string {
	return []string{
		fmt.Sprintf("Tick: %d", stats.Tick),
		fmt.Sprintf("Direction: %s", stats.Direction),
		fmt.Sprintf("Airplane: (%.0f, %.0f)", airplane.Pos.X, airplane.Pos.Y),
		fmt.Sprintf("Bounds: %.0fx%.0f", bounds.Width, bounds.Height),
		fmt.Sprintf("Projectiles: %d live, %d fired, %d removed", stats.Projectiles, stats.Fired, stats.Removed),
		fmt.Sprintf("Entities: %d", stats.Entities),
	}
}

// systemRows formats one row per system: name, runs, avg, max, last.
func systemRows(stats *ecs.SchedulerStats) [][]string {
	if stats == nil {
		return nil
	}

	rows := make([][]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.ExecutionCount),
			formatDuration(s.AvgDuration),
			formatDuration(s.MaxDuration),
			formatDuration(s.LastDuration),
		})
	}
	return rows
}

// columnRows formats one row per component column: type, count.
func columnRows(stats ecs.StorageStats) [][]string {
	rows := make([][]string, 0, len(stats.Columns))
	for _, c := range stats.Columns {
		rows = append(rows, []string{c.Type, fmt.Sprintf("%d", c.Count)})
	}
	return rows
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fus", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}

func fmtFPS(h *FrameHistory) string {
	return fmt.Sprintf("Avg %.2f ms (%.0f FPS)", h.Average(), h.FPS())
}
