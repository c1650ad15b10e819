package paraxial

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Run loads a JSON system description, writes the analysis report to out,
// and returns the config, the built path and the traced display fan group
// (RayCount launch heights × FanCount angles) for rendering.
func Run(cfgPath string, out io.Writer) (*Config, *OpticalPath, [][]Ray, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}
	path, err := cfg.Path.Build()
	if err != nil {
		return nil, nil, nil, err
	}
	DebugLog("Loaded %q: %d elements, total length %g", cfgPath, len(path.Elements()), path.TotalLength())

	report(out, path)

	if Debug {
		for i, o := range path.Layout() {
			fmt.Fprintf(out, "  #%d %s z=%g len=%g aperture=%g %s\n",
				i, o.Kind, o.Z, o.Length, o.Aperture, o.Label)
		}
	}

	half := path.ObjectHeight / 2
	start := time.Now()
	fan := FanGroup(-half, half, path.RayCount, -path.FanAngle/2, path.FanAngle/2, path.FanCount)
	traces := path.TraceMany(fan)
	DebugLog("Traced %d rays in %s", len(fan), time.Since(start))

	return cfg, path, traces, nil
}

func report(w io.Writer, p *OpticalPath) {
	sys := p.SystemMatrix()
	fmt.Fprintf(w, "System: %s\n", p.Label)
	fmt.Fprintf(w, "  elements: %d, total length: %g\n", len(p.elements), p.TotalLength())
	fmt.Fprintf(w, "  matrix: A=%.6g B=%.6g C=%.6g D=%.6g (det=%.6g)\n",
		sys.A, sys.B, sys.C, sys.D, sys.Determinant())

	for _, c := range p.IntermediateConjugates() {
		fmt.Fprintf(w, "  conjugate plane: z=%.6g, magnification=%.6g\n", c.Position, c.Magnification)
	}

	stop, err := p.ApertureStop()
	if errors.Is(err, ErrNoStop) {
		fmt.Fprintln(w, "  aperture stop: none (no finite aperture)")
		return
	}
	fmt.Fprintf(w, "  aperture stop: element #%d, z=%.6g, diameter=%.6g\n",
		stop.Index, stop.Position, stop.Diameter)

	if pupil, err := p.EntrancePupil(); err == nil {
		fmt.Fprintf(w, "  entrance pupil: z=%.6g, diameter=%.6g\n", pupil.Position, pupil.Diameter)
	}
	if pupil, err := p.ExitPupil(); err == nil {
		fmt.Fprintf(w, "  exit pupil: z=%.6g, diameter=%.6g\n", pupil.Position, pupil.Diameter)
	}

	fs, err := p.FieldStop()
	if err != nil {
		fmt.Fprintln(w, "  field stop: none")
		return
	}
	fmt.Fprintf(w, "  field stop: element #%d, z=%.6g, diameter=%.6g\n",
		fs.Index, fs.Position, fs.Diameter)
	if fov, err := p.FieldOfView(); err == nil {
		fmt.Fprintf(w, "  field of view: %.6g\n", fov)
	}
	if size, err := p.ImageSize(); err == nil {
		fmt.Fprintf(w, "  image size: %.6g\n", size)
	}
}
