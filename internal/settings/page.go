// Package settings models the hardware tweak settings page: which toggles
// the detected GPU can offer and their persisted values.
package settings

import (
	"errors"
	"fmt"

	"github.com/emufront/gpucaps/internal/gpuinfo"
)

// Preference keys shared with the front-end
const (
	KeyTileTransactionElimination = "pref_key_mali_te"
	KeyFrameCompression           = "pref_key_mali_afbc"
)

var (
	ErrUnknownKey        = errors.New("unknown settings key")
	ErrToggleUnavailable = errors.New("toggle not supported by this GPU")
)

// Toggle is one switch on the page
type Toggle struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Available bool   `json:"available"`
	Value     bool   `json:"value"`
}

// Page is the hardware tweaks page plus the GPU information row
type Page struct {
	Toggles      []Toggle             `json:"toggles"`
	Renderer     string               `json:"renderer"`
	Architecture gpuinfo.Architecture `json:"architecture"`
}

type toggleDef struct {
	key       string
	title     string
	subtitle  string
	available func(gpuinfo.Report) bool
}

var toggleDefs = []toggleDef{
	{
		key:      KeyTileTransactionElimination,
		title:    "Transaction Elimination",
		subtitle: "Skip writing back screen tiles that did not change",
		available: func(r gpuinfo.Report) bool {
			return r.SupportsTileTransactionElimination
		},
	},
	{
		key:      KeyFrameCompression,
		title:    "Force AFBC",
		subtitle: "Enable Arm Frame Buffer Compression",
		available: func(r gpuinfo.Report) bool {
			return r.SupportsFrameCompression
		},
	},
}

// defaultValue is the value of a toggle nobody has touched yet
const defaultValue = true

// BuildPage reads the stored toggle values for report's GPU
func BuildPage(report gpuinfo.Report, store Store) (Page, error) {
	page := Page{Renderer: report.Renderer, Architecture: report.Architecture}
	for _, def := range toggleDefs {
		value, err := store.Bool(def.key, defaultValue)
		if err != nil {
			return page, err
		}
		page.Toggles = append(page.Toggles, Toggle{
			Key:       def.key,
			Title:     def.title,
			Subtitle:  def.subtitle,
			Available: def.available(report),
			Value:     value,
		})
	}
	return page, nil
}

// Available returns only the toggles the GPU supports
func (p Page) Available() []Toggle {
	var out []Toggle
	for _, t := range p.Toggles {
		if t.Available {
			out = append(out, t)
		}
	}
	return out
}

// Apply stores value for key if the toggle exists and is offered on this GPU
func Apply(report gpuinfo.Report, store Store, key string, value bool) error {
	for _, def := range toggleDefs {
		if def.key != key {
			continue
		}
		if !def.available(report) {
			return fmt.Errorf("%s: %w", key, ErrToggleUnavailable)
		}
		return store.SetBool(key, value)
	}
	return fmt.Errorf("%q: %w", key, ErrUnknownKey)
}
