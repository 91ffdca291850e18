package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/sqlformat/internal/options"
	"github.com/dshills/sqlformat/internal/style"
)

// Layer is one configuration source in precedence order.
type Layer struct {
	Source  string
	Overlay options.Overlay
}

// Request describes one resolution.
type Request struct {
	// Path is the target file or directory; discovery starts here.
	Path string
	// Style is the CLI style selection, a name or inline overlay. Empty means none.
	Style string
	// Overrides holds the explicitly set CLI flags.
	Overrides options.Overlay
}

// Result is a resolved configuration together with how it was built.
type Result struct {
	Config options.Config
	// File is the configuration file used, or "" if none was found.
	File   string
	Layers []Layer
}

// Resolver composes defaults, the nearest config file, styles and CLI
// overrides into one configuration.
type Resolver struct {
	styles *style.Catalog
	log    *slog.Logger
}

// NewResolver returns a Resolver using the given catalog. A nil logger discards output.
func NewResolver(styles *style.Catalog, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{styles: styles, log: logger}
}

// Resolve locates the configuration file for req.Path and layers every
// source over the defaults. Any parse or style error aborts resolution.
func (r *Resolver) Resolve(req Request) (Result, error) {
	path, found, err := Find(req.Path)
	if err != nil {
		return Result{}, err
	}

	var file *options.Overlay
	if found {
		r.log.Debug("using config file", slog.String("path", path))
		o, err := LoadFile(path)
		if err != nil {
			return Result{}, err
		}
		file = &o
	} else {
		r.log.Debug("no config file found", slog.String("start", req.Path))
	}

	layers, err := r.Layers(file, path, req.Style, req.Overrides)
	if err != nil {
		return Result{}, err
	}
	return Result{Config: Apply(layers), File: path, Layers: layers}, nil
}

// Load resolves the configuration for start with no CLI input.
func (r *Resolver) Load(start string) (options.Config, error) {
	res, err := r.Resolve(Request{Path: start})
	return res.Config, err
}

// LoadString resolves configuration text as if it were a config file,
// expanding its BasedOnStyle.
func (r *Resolver) LoadString(text string) (options.Config, error) {
	o, err := options.Parse(text)
	if err != nil {
		return options.Config{}, err
	}
	layers, err := r.Layers(&o, "<string>", "", options.Overlay{})
	if err != nil {
		return options.Config{}, err
	}
	return Apply(layers), nil
}

// Layers builds the ordered layer list, lowest precedence first:
// the file's base style, the file's own keys, the CLI style (with its own
// base style, if inline), then the CLI overrides. file may be nil.
func (r *Resolver) Layers(file *options.Overlay, fileSource, cliStyle string, cli options.Overlay) ([]Layer, error) {
	var layers []Layer

	if file != nil {
		if file.BasedOn != "" {
			base, err := r.styles.Lookup(file.BasedOn)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", fileSource, options.BasedOnStyle, err)
			}
			layers = append(layers, Layer{Source: "style " + file.BasedOn, Overlay: base})
		}
		layers = append(layers, Layer{Source: fileSource, Overlay: *file})
	}

	if cliStyle != "" {
		s, err := r.styles.Resolve(cliStyle)
		if err != nil {
			return nil, fmt.Errorf("--style: %w", err)
		}
		if s.BasedOn != "" {
			base, err := r.styles.Lookup(s.BasedOn)
			if err != nil {
				return nil, fmt.Errorf("--style: %s: %w", options.BasedOnStyle, err)
			}
			layers = append(layers, Layer{Source: "style " + s.BasedOn, Overlay: base})
		}
		layers = append(layers, Layer{Source: "--style " + cliStyle, Overlay: s})
	}

	if !cli.Empty() {
		layers = append(layers, Layer{Source: "command line", Overlay: cli})
	}

	for _, l := range layers {
		r.log.Debug("config layer", slog.String("source", l.Source), slog.Int("keys", l.Overlay.Len()))
	}
	return layers, nil
}

// Apply layers every overlay onto the defaults in order.
func Apply(layers []Layer) options.Config {
	overlays := make([]options.Overlay, len(layers))
	for i, l := range layers {
		overlays[i] = l.Overlay
	}
	return options.ApplyLayers(options.Defaults(), overlays...)
}
