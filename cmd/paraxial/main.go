package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/paraxial/internal/paraxial"
	"github.com/lukaszgryglicki/paraxial/internal/schematic"
)

func main() {
	paraxial.Debug = os.Getenv("DEBUG") != ""
	noPNG := os.Getenv("NO_PNG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "systems/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := run(cfg, noPNG); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, noPNG bool) error {
	cfg, path, traces, err := paraxial.Run(cfgPath, os.Stdout)
	if err != nil {
		return err
	}
	if noPNG {
		return nil
	}
	img := schematic.Render(path, traces, cfg.PNGWidth, cfg.PNGHeight)
	if err := schematic.SavePNG(img, cfg.PNGOut); err != nil {
		return err
	}
	fmt.Println("Saved schematic:", cfg.PNGOut)
	return nil
}
