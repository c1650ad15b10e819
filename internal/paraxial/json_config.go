package paraxial

import (
	"encoding/json"
	"fmt"
	"os"
)

type ElementCfg struct {
	Type     string `json:"type"` // "space", "lens" or "aperture"
	Distance Real   `json:"d,omitempty"`
	Focal    Real   `json:"f,omitempty"`
	Diameter Real   `json:"diameter,omitempty"` // 0 = unconstrained
	Label    string `json:"label,omitempty"`
}

type PathCfg struct {
	Label        string       `json:"label,omitempty"`
	ObjectHeight Real         `json:"objectHeight,omitempty"`
	FanAngle     Real         `json:"fanAngle,omitempty"`
	FanCount     int          `json:"fanCount,omitempty"`
	RayCount     int          `json:"rayCount,omitempty"`
	Elements     []ElementCfg `json:"elements"`
}

type Config struct {
	Path      PathCfg `json:"path"`
	PNGOut    string  `json:"pngOut,omitempty"`
	PNGWidth  int     `json:"pngWidth,omitempty"`
	PNGHeight int     `json:"pngHeight,omitempty"`
}

func (c ElementCfg) Build() (Matrix, error) {
	dia := c.Diameter
	if dia == 0 {
		dia = Unconstrained
	}
	switch c.Type {
	case "space":
		el, err := NewSpace(c.Distance)
		if err != nil {
			return Matrix{}, err
		}
		el.Aperture = dia
		return el.Labeled(c.Label), nil
	case "lens":
		el, err := NewLens(c.Focal, dia)
		if err != nil {
			return Matrix{}, err
		}
		return el.Labeled(c.Label), nil
	case "aperture":
		el, err := NewAperture(c.Diameter)
		if err != nil {
			return Matrix{}, err
		}
		return el.Labeled(c.Label), nil
	}
	return Matrix{}, fmt.Errorf("%w: unknown element type %q", ErrInvalidParameter, c.Type)
}

func (c PathCfg) Build() (*OpticalPath, error) {
	p := NewOpticalPath(c.Label)
	if c.ObjectHeight > 0 {
		p.ObjectHeight = c.ObjectHeight
	}
	if c.FanAngle > 0 {
		p.FanAngle = c.FanAngle
	}
	if c.FanCount > 0 {
		p.FanCount = c.FanCount
	}
	if c.RayCount > 0 {
		p.RayCount = c.RayCount
	}
	for i, ec := range c.Elements {
		el, err := ec.Build()
		if err != nil {
			return nil, fmt.Errorf("element #%d: %w", i, err)
		}
		p.Append(el)
	}
	return p, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Path.ObjectHeight == 0 {
		cfg.Path.ObjectHeight = ObjectHeight
	}
	if cfg.Path.FanAngle == 0 {
		cfg.Path.FanAngle = FanAngle
	}
	if cfg.Path.FanCount <= 0 {
		cfg.Path.FanCount = FanCount
	}
	if cfg.Path.RayCount <= 0 {
		cfg.Path.RayCount = RayCount
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.PNGWidth <= 0 {
		cfg.PNGWidth = PNGWidth
	}
	if cfg.PNGHeight <= 0 {
		cfg.PNGHeight = PNGHeight
	}
	return &cfg, nil
}
