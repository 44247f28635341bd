// Public domain.

package environ_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"orbdet/environ"
)

func TestNew(t *testing.T) {
	e, err := environ.New("horizon:DE440", environ.FCCT14)
	if err != nil {
		t.Fatal(err)
	}
	if e.Kernel() != "DE440" {
		t.Error("kernel:", e.Kernel())
	}
	if e.Model() != environ.FCCT14 {
		t.Error("model:", e.Model())
	}
	for _, bad := range []string{
		"DE440",          // no source
		"spice:DE440",    // unknown source
		"horizon:DE999",  // unknown kernel
		"horizon",        // no separator
	} {
		_, err := environ.New(bad, environ.FCCT14)
		if err == nil {
			t.Errorf("%q: expected error", bad)
			continue
		}
		var ee environ.EnvironmentError
		if !errors.As(err, &ee) {
			t.Errorf("%q: error %T, want EnvironmentError", bad, err)
		}
	}
}

func TestParseErrorModel(t *testing.T) {
	for _, c := range []struct {
		in   string
		want environ.ErrorModel
	}{
		{"FCCT14", environ.FCCT14},
		{"VFCC17", environ.VFCC17},
		{"anything else", environ.FCCT14}, // unknown names default
	} {
		if got := environ.ParseErrorModel(c.in); got != c.want {
			t.Errorf("ParseErrorModel(%q) = %v", c.in, got)
		}
	}
}

func TestObservers(t *testing.T) {
	e, err := environ.New("horizon:DE440", environ.VFCC17)
	if err != nil {
		t.Fatal(err)
	}
	o := environ.NewObserver(243.140213, 33.357336, 1663.96,
		"Palomar Mountain--ZTF")
	e.AddObserver(o)
	if len(e.Observers()) != 1 {
		t.Fatal("observer not registered")
	}
	if s := e.ShowObservatories(); !strings.Contains(s, "Palomar") {
		t.Errorf("table missing site name:\n%s", s)
	}
}

func TestObserverVect(t *testing.T) {
	// a site on the equator at sea level sits one equatorial radius
	// from the geocenter
	o := environ.NewObserver(0, 0, 0, "equator")
	v := o.EarthObserverVect(59000)
	r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	want := 6.37814e6 / 149.59787e9
	if math.Abs(r-want) > want*1e-9 {
		t.Errorf("site radius %g AU, want %g", r, want)
	}
	if math.Abs(v.Z) > want*1e-9 {
		t.Errorf("equatorial site has z = %g", v.Z)
	}
}

func TestSunObserver(t *testing.T) {
	e, err := environ.New("horizon:DE441", environ.FCCT14)
	if err != nil {
		t.Fatal(err)
	}
	o := environ.NewObserver(0, 45, 100, "test")
	v := e.SunObserver(o, 59000)
	r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	// heliocentric distance of a terrestrial observer
	if r < .97 || r > 1.03 {
		t.Errorf("sun-observer distance %g AU", r)
	}
}

func TestObserverByCodeUnloaded(t *testing.T) {
	e, err := environ.New("horizon:DE440", environ.FCCT14)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.ObserverByCode("291"); err == nil {
		t.Error("expected error before catalog load")
	}
}
