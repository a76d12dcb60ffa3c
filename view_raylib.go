//go:build raylib

package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chazu/strata/pkg/config"
	"github.com/chazu/strata/pkg/kernel/raylib"
	"github.com/chazu/strata/pkg/terrain"
)

const (
	viewWidth  = 1280
	viewHeight = 720
	isoStep    = 0.02
)

// view opens a window on the terrain of the script at path and orbits it.
// Up and down raise and lower the isolevel; the mesh is rebuilt on the
// next frame and uploaded through the sink.
func view(cfg *config.Config, path string) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(viewWidth, viewHeight, "strata: "+path)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	s, err := raylib.New()
	if err != nil {
		return err
	}
	sink, ok := s.(*raylib.Sink)
	if !ok {
		return fmt.Errorf("view: unexpected sink %T", s)
	}
	defer sink.Unload()

	app := NewApp(cfg, terrain.WithSink(sink))
	if err := evaluateFile(app, path); err != nil {
		return err
	}

	g := app.Recipe().Grid
	extent := float32(max(g.Cols, g.Rows, g.Layers)) * g.Spacing
	camera := rl.Camera3D{
		Position:   rl.NewVector3(extent, extent*0.75, extent),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)
		iso := app.Terrain().IsoLevel()
		switch {
		case rl.IsKeyPressed(rl.KeyUp):
			app.SetIsoLevel(iso + isoStep)
		case rl.IsKeyPressed(rl.KeyDown):
			app.SetIsoLevel(iso - isoStep)
		}
		m := app.Mesh()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(0, 0, 128, 255))
		rl.BeginMode3D(camera)
		sink.Draw()
		rl.EndMode3D()
		rl.DrawText(fmt.Sprintf("isolevel %.2f  %d triangles", app.Terrain().IsoLevel(), m.TriangleCount()), 10, 10, 20, rl.RayWhite)
		rl.EndDrawing()
	}
	return nil
}
