package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/spectra-render/spectra/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "spectra"
	app.Usage = "render scenes of geometric primitives by path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Build the selected scene, construct a BVH over its primitives and render it
with the configured number of worker threads. The output format is chosen by
file extension: .png for PNG, anything else for plain-text PPM.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1920,
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1080,
					Usage: "image height in pixels",
				},
				cli.IntFlag{
					Name:  "rays-per-pixel",
					Value: 10,
					Usage: "camera rays sampled per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "max recursion depth per ray",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render worker count (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene generation and pixel sampling",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "cover",
					Usage: "scene to render (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file to texture-map where the scene supports it",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "output image filename",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
