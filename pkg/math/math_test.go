// pkg/math/math_test.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestVectorOps(t *testing.T) {
	a, b := [2]float32{1, 2}, [2]float32{3, -4}

	if v := Add2f(a, b); v != [2]float32{4, -2} {
		t.Errorf("Add2f: got %v", v)
	}
	if v := Sub2f(a, b); v != [2]float32{-2, 6} {
		t.Errorf("Sub2f: got %v", v)
	}
	if v := Scale2f(a, 0.5); v != [2]float32{0.5, 1} {
		t.Errorf("Scale2f: got %v", v)
	}
	if v := Mul2f(a, b); v != [2]float32{3, -8} {
		t.Errorf("Mul2f: got %v", v)
	}
	if !Approx2f(a, [2]float32{1.0000001, 1.9999999}, 1e-5) {
		t.Errorf("Approx2f: nearby points compare unequal")
	}
	if Approx2f(a, b, 1e-5) {
		t.Errorf("Approx2f: distant points compare equal")
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(5, 0, 3); v != 3 {
		t.Errorf("Clamp high: got %d", v)
	}
	if v := Clamp(-1, 0, 3); v != 0 {
		t.Errorf("Clamp low: got %d", v)
	}
	if v := Clamp(float32(1.5), 0, 3); v != 1.5 {
		t.Errorf("Clamp inside: got %f", v)
	}
	if v := Abs(float32(-2)); v != 2 {
		t.Errorf("Abs: got %f", v)
	}
}

func TestExtent2D(t *testing.T) {
	if !EmptyExtent2D().IsEmpty() {
		t.Errorf("empty extent doesn't report being empty")
	}
	if !Extent2DFromPoints(nil).IsEmpty() {
		t.Errorf("extent of no points isn't empty")
	}

	e := Extent2DFromPoints([][2]float32{{1, 5}, {-2, 3}, {4, -1}})
	if e.IsEmpty() {
		t.Fatalf("extent of points reports empty")
	}
	if e.P0 != [2]float32{-2, -1} || e.P1 != [2]float32{4, 5} {
		t.Errorf("unexpected extent %+v", e)
	}
	if e.Width() != 6 || e.Height() != 6 {
		t.Errorf("unexpected size %f x %f", e.Width(), e.Height())
	}
	if c := e.Center(); c != [2]float32{1, 2} {
		t.Errorf("unexpected center %v", c)
	}
	if !e.Inside([2]float32{0, 0}) || e.Inside([2]float32{5, 0}) {
		t.Errorf("Inside gave unexpected results")
	}
	if o := e.Offset([2]float32{1, 1}); o.P0 != [2]float32{-1, 0} || o.P1 != [2]float32{5, 6} {
		t.Errorf("unexpected offset extent %+v", o)
	}
}
