// Public domain.

// Package environ holds the shared, read-only state an estimation run
// works against: the ephemeris selection, the astrometric error model
// and the registry of observing sites.  An Environment is an explicit
// value constructed up front and passed where needed; several
// independent environments can coexist in one process.
package environ

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
)

// ErrorModel selects the astrometric error model applied by solvers.
type ErrorModel int

const (
	FCCT14 ErrorModel = iota
	VFCC17
)

func (m ErrorModel) String() string {
	if m == VFCC17 {
		return "VFCC17"
	}
	return "FCCT14"
}

// ParseErrorModel maps a model name to an ErrorModel.  Unknown names
// fall back to FCCT14.
func ParseErrorModel(s string) ErrorModel {
	if s == "VFCC17" {
		return VFCC17
	}
	return FCCT14
}

// EnvironmentError reports a failure to construct an environment.
type EnvironmentError struct {
	Selector string
	Reason   string
}

func (e EnvironmentError) Error() string {
	return fmt.Sprintf("environment: ephemeris selector %q: %s",
		e.Selector, e.Reason)
}

// kernels accepted by the horizon source.
var kernels = map[string]bool{
	"DE430": true,
	"DE440": true,
	"DE441": true,
}

// Environment is the run context for orbit estimation.  It is mutable
// while being configured (AddObserver, LoadObscodes) and must be treated
// as read-only once estimation starts.
type Environment struct {
	source    string
	kernel    string
	model     ErrorModel
	observers []*Observer
	ocd       observation.ParallaxMap
}

// New creates an environment from an ephemeris selector of the form
// "source:kernel", e.g. "horizon:DE440", and an error model.  A selector
// naming an unknown source or kernel fails immediately.
func New(ephemSelector string, model ErrorModel) (*Environment, error) {
	source, kernel, ok := strings.Cut(ephemSelector, ":")
	if !ok {
		return nil, EnvironmentError{ephemSelector,
			"want the form source:kernel"}
	}
	if source != "horizon" {
		return nil, EnvironmentError{ephemSelector,
			"unknown ephemeris source " + source}
	}
	if !kernels[kernel] {
		return nil, EnvironmentError{ephemSelector,
			"unknown kernel " + kernel}
	}
	return &Environment{source: source, kernel: kernel, model: model}, nil
}

// Kernel returns the selected ephemeris kernel name, e.g. "DE440".
func (e *Environment) Kernel() string { return e.kernel }

// Model returns the selected astrometric error model.
func (e *Environment) Model() ErrorModel { return e.model }

// AddObserver registers an observing site with the environment.
func (e *Environment) AddObserver(o *Observer) {
	e.observers = append(e.observers, o)
}

// Observers returns the registered sites in registration order.
func (e *Environment) Observers() []*Observer { return e.observers }

// LoadObscodes reads the MPC observatory code catalog from the named
// file.  When the file is unreadable a fresh copy is fetched to the same
// path first, the way digest2 recovers a missing digest2.obscodes.
func (e *Environment) LoadObscodes(path string) error {
	m, err := mpcformat.ReadObscodeDatFile(path)
	if err == nil {
		e.ocd = m
		return nil
	}
	if ferr := mpcformat.FetchObscodeDat(path); ferr != nil {
		return fmt.Errorf("obscode catalog: %w (fetch: %v)", err, ferr)
	}
	if m, err = mpcformat.ReadObscodeDatFile(path); err != nil {
		return err
	}
	e.ocd = m
	return nil
}

// Obscodes returns the loaded MPC catalog, or nil before LoadObscodes.
func (e *Environment) Obscodes() observation.ParallaxMap { return e.ocd }

// ObserverByCode builds an Observer from the loaded MPC catalog.  The
// observer is returned, not registered; pass it to AddObserver to keep
// it.  Codes of roving or space-based sites carry no parallax constants
// and are rejected.
func (e *Environment) ObserverByCode(code string) (*Observer, error) {
	if e.ocd == nil {
		return nil, fmt.Errorf("observer %s: obscode catalog not loaded", code)
	}
	p, ok := e.ocd[code]
	if !ok {
		return nil, fmt.Errorf("observer %s: unknown obscode", code)
	}
	if p == nil {
		return nil, fmt.Errorf("observer %s: site has no fixed location", code)
	}
	return observerFromParallax(code, p), nil
}

// ShowObservatories renders the registered sites as a table.
func (e *Environment) ShowObservatories() string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Name", "Longitude", "Latitude", "Elev m"})
	for _, o := range e.observers {
		tw.AppendRow(table.Row{o.Name, o.LongitudeString(),
			o.LatitudeString(), fmt.Sprintf("%.0f", o.Elevation)})
	}
	return tw.Render()
}
