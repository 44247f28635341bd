// Public domain.

package obs_test

import (
	"errors"
	"math"
	"testing"

	"orbdet/obs"
)

func TestLengthMismatch(t *testing.T) {
	id := make([]uint32, 10)
	ra := make([]float64, 10)
	dec := make([]float64, 9) // short on purpose
	mjd := make([]float64, 10)
	_, err := obs.BatchFromRadians(id, ra, dec, 1e-6, 1e-6, mjd)
	if err == nil {
		t.Fatal("expected length mismatch")
	}
	var lm obs.LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("error %T, want LengthMismatchError", err)
	}
	if lm.Field != "dec" || lm.Expected != 10 || lm.Actual != 9 {
		t.Errorf("got %+v", lm)
	}
	// same check on the converting path
	if _, err = obs.BatchFromDegrees(id, ra, dec, .5, .5, mjd); err == nil {
		t.Fatal("expected length mismatch from degrees path")
	}
}

func TestRadiansBorrowed(t *testing.T) {
	id := []uint32{7, 7}
	ra := []float64{1.0, 1.01}
	dec := []float64{.5, .51}
	mjd := []float64{59000, 59000.01}
	b, err := obs.BatchFromRadians(id, ra, dec, 1e-6, 2e-6, mjd)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Fatalf("len %d, want 2", b.Len())
	}
	// no conversion on this path: values pass through exactly
	o := b.At(1)
	if o.RA != 1.01 || o.Dec != .51 || o.MJD != 59000.01 {
		t.Errorf("record altered: %+v", o)
	}
	if o.SigmaRA != 1e-6 || o.SigmaDec != 2e-6 {
		t.Errorf("sigmas altered: %+v", o)
	}
}

func TestDegreesConverted(t *testing.T) {
	id := []uint32{0, 0, 1}
	raDeg := []float64{10, 10.01, 185}
	decDeg := []float64{5, 5.01, -2}
	mjd := []float64{60000, 60000.01, 60000.02}
	b, err := obs.BatchFromDegrees(id, raDeg, decDeg, .5, .5, mjd)
	if err != nil {
		t.Fatal(err)
	}
	const tol = 1e-15
	for i := range raDeg {
		o := b.At(i)
		if math.Abs(o.RA-raDeg[i]*math.Pi/180) > tol {
			t.Errorf("ra[%d] = %g", i, o.RA)
		}
		if math.Abs(o.Dec-decDeg[i]*math.Pi/180) > tol {
			t.Errorf("dec[%d] = %g", i, o.Dec)
		}
	}
	want := .5 * math.Pi / (180 * 3600)
	if math.Abs(b.SigmaRA-want) > tol || math.Abs(b.SigmaDec-want) > tol {
		t.Errorf("sigma = %g, %g, want %g", b.SigmaRA, b.SigmaDec, want)
	}
	// owned storage: mutating the input must not reach the batch
	raDeg[0] = 99
	if b.At(0).RA > 1 {
		t.Error("degrees path must copy its inputs")
	}
}

func TestObjectIDKeys(t *testing.T) {
	m := map[obs.ObjectID]int{
		obs.NumberID(7):     1,
		obs.DesigID("2009 BD"): 2,
	}
	if m[obs.NumberID(7)] != 1 || m[obs.DesigID("2009 BD")] != 2 {
		t.Error("object ids must work as map keys")
	}
	if obs.NumberID(7).String() != "7" {
		t.Error(obs.NumberID(7).String())
	}
	if obs.DesigID("2009 BD").String() != "2009 BD" {
		t.Error(obs.DesigID("2009 BD").String())
	}
}
