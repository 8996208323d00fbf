// Command outlinedemo simulates a host frame loop around the outline
// effect and prints the commands each frame would submit.
//
// With -config it loads the layer stack from a TOML file; otherwise it
// builds a small two-layer demo scene.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/backend/trace"
	"github.com/gogpu/outline/config"
	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

// object is a named scene object with toggleable visibility.
type object struct {
	name    string
	visible bool
}

func (o *object) Visible() bool { return o.visible }

// resources is always valid; the trace backend needs no GPU state.
type resources struct{}

func (resources) IsValid() bool { return true }

// camera is a minimal host camera: it keeps attached buffers and hands
// out one fixed target.
type camera struct {
	target  render.RenderTarget
	buffers []*recording.CommandBuffer
}

func (c *camera) AttachBuffer(event outline.RenderEvent, buf *recording.CommandBuffer) error {
	c.buffers = append(c.buffers, buf)
	return nil
}

func (c *camera) DetachBuffer(event outline.RenderEvent, buf *recording.CommandBuffer) {
	for i, b := range c.buffers {
		if b == buf {
			c.buffers = append(c.buffers[:i], c.buffers[i+1:]...)
			return
		}
	}
}

func (c *camera) Target() render.RenderTarget { return c.target }

func main() {
	var (
		width      = flag.Int("width", 800, "target width")
		height     = flag.Int("height", 600, "target height")
		configPath = flag.String("config", "", "TOML layer configuration to load")
		frames     = flag.Int("frames", 3, "number of frames to simulate")
	)
	flag.Parse()

	layers, hero := buildLayers(*configPath)

	effect := outline.NewEffect(outline.WithResources(resources{}))
	if err := effect.SetLayers(layers); err != nil {
		log.Fatalf("set layers: %v", err)
	}

	cam := &camera{target: render.NewPixmapTarget(*width, *height)}
	if err := effect.Enable(cam); err != nil {
		log.Fatalf("enable: %v", err)
	}
	defer effect.Close()

	backend := recording.MustBackend(trace.BackendTrace).(*trace.Backend)

	for frame := 1; frame <= *frames; frame++ {
		// Mid-scene mutation on frame 2: the hero goes invisible and the
		// layer must re-record. Stable frames re-record nothing.
		if frame == 2 && hero != nil {
			hero.visible = false
			if first, err := layers.Get(0); err == nil {
				first.SetStyle(first.Style) // mark the layer for rebuild
			}
		}

		layers.UpdateChanged()
		effect.Update()

		fmt.Printf("frame %d (changed=%v):\n", frame, layers.IsChanged())
		backend.Reset()
		for _, buf := range cam.buffers {
			if err := buf.Execute(backend); err != nil {
				log.Fatalf("execute: %v", err)
			}
		}
		if ops := backend.Ops(); len(ops) == 0 {
			fmt.Println("  (empty submission)")
		} else {
			for _, op := range ops {
				fmt.Printf("  %s\n", op)
			}
		}

		effect.EndFrame()
	}
}

// buildLayers loads the configured layer stack, or builds the demo scene.
// The returned object is the mutable "hero" member, nil for loaded configs.
func buildLayers(path string) (*outline.LayerCollection, *object) {
	if path != "" {
		layers, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return layers, nil
	}

	hero := &object{name: "hero", visible: true}
	crate := &object{name: "crate", visible: true}

	heroes := outline.NewLayer("heroes")
	heroes.Add(hero)

	props := outline.NewLayer("props")
	style := props.Style
	style.Color = color.RGBA{G: 0xff, A: 0xff}
	style.Width = 2
	props.SetStyle(style)
	props.Add(crate)

	layers := outline.NewLayerCollection()
	layers.Add(heroes)
	layers.Add(props)
	return layers, hero
}
