package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/chazu/strata/pkg/config"
	"github.com/chazu/strata/pkg/export"
	"github.com/chazu/strata/pkg/kernel/sdfx"
	"github.com/chazu/strata/pkg/stream"
	"github.com/chazu/strata/pkg/terrain"
)

const usage = `usage: strata <command> [args]

commands:
  mesh <script> <out.glb>        evaluate a script and write binary glTF
  stl <script> <out.stl>         evaluate a script and write STL via sdfx
  snapshot <script> <out.strm>   evaluate a script and write a mesh snapshot
  inspect <in.strm>              print the contents of a snapshot
  serve <script>                 stream the terrain to websocket clients
  view <script>                  open a window on the terrain (needs -tags=raylib)
  config <out.json>              write the default configuration

The configuration is read from $STRATA_CONFIG or ./strata.json.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: expected %d arguments, got %d\n\n%s", cmd, n, len(args), usage)
		}
		return nil
	}

	switch cmd {
	case "config":
		if err := need(1); err != nil {
			return err
		}
		return config.Default().Save(args[0])
	case "inspect":
		if err := need(1); err != nil {
			return err
		}
		return inspect(args[0])
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	switch cmd {
	case "mesh", "stl", "snapshot":
		if err := need(2); err != nil {
			return err
		}
		app := NewApp(cfg)
		if err := evaluateFile(app, args[0]); err != nil {
			return err
		}
		switch cmd {
		case "mesh":
			return export.SaveGLB(args[1], app.Mesh())
		case "stl":
			t := app.Terrain()
			return sdfx.WriteSTL(args[1], t.Field(), t.IsoLevel(), cfg.SdfxCells)
		default:
			return export.SaveSnapshot(args[1], app.Mesh())
		}
	case "serve":
		if err := need(1); err != nil {
			return err
		}
		return serve(cfg, args[0])
	case "view":
		if err := need(1); err != nil {
			return err
		}
		return view(cfg, args[0])
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

func configPath() string {
	if p := os.Getenv("STRATA_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath
}

// evaluateFile runs the script at path and reports any evaluation errors.
func evaluateFile(app *App, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result := app.Evaluate(string(source))
	for _, w := range result.Warnings {
		log.Printf("warning: %s: %s", w.Param, w.Message)
	}
	if !result.OK() {
		return fmt.Errorf("%s: %s", path, describe(result.Errors))
	}
	return nil
}

func describe(errs []EvalErrorData) string {
	if len(errs) == 0 {
		return "no mesh produced"
	}
	e := errs[0]
	switch {
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Param != "":
		return fmt.Sprintf("%s: %s", e.Param, e.Message)
	}
	return e.Message
}

func inspect(path string) error {
	m, err := export.LoadSnapshot(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d vertices, %d triangles\n", path, m.VertexCount(), m.TriangleCount())
	return nil
}

// serve evaluates the script once and then streams every regeneration.
func serve(cfg *config.Config, path string) error {
	hub := stream.NewHub(nil)
	defer hub.Close()

	app := NewApp(cfg, terrain.WithSink(hub))
	if err := evaluateFile(app, path); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.Handle("/mesh", hub.MeshHandler())
	mux.Handle("/isolevel", isoLevelHandler(app))

	log.Printf("streaming %s on ws://%s/ws", path, cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, mux)
}

// isoLevelHandler serves POST /isolevel?v=0.4, re-meshing the app's
// terrain at the new isolevel.
func isoLevelHandler(app *App) http.Handler {
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		v, err := strconv.ParseFloat(r.URL.Query().Get("v"), 32)
		if err != nil {
			http.Error(w, "bad isolevel: "+err.Error(), http.StatusBadRequest)
			return
		}
		if math.IsNaN(v) {
			http.Error(w, "bad isolevel: NaN", http.StatusBadRequest)
			return
		}
		mu.Lock()
		result := app.SetIsoLevel(float32(v))
		mu.Unlock()

		reply := struct {
			IsoLevel  float32         `json:"isolevel"`
			Triangles int             `json:"triangles"`
			Errors    []EvalErrorData `json:"errors"`
		}{IsoLevel: result.IsoLevel, Errors: result.Errors}
		if result.Mesh != nil {
			reply.Triangles = result.Mesh.Triangles
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			log.Printf("isolevel: encode: %v", err)
		}
	})
}
