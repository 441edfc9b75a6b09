package math

import "testing"

func TestVec3Cross(t *testing.T) {
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("X × Y = %v, want Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	if l := V3(3, 4, 12).Normalize().Length(); !near(l, 1) {
		t.Errorf("normalized length = %f, want 1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero normalize = %v, want zero", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	got := V3(0, 0, 0).Lerp(V3(10, -10, 4), 0.5)
	if got != V3(5, -5, 2) {
		t.Errorf("Lerp = %v, want (5,-5,2)", got)
	}
}

func TestVec3Array(t *testing.T) {
	v := V3(1, 2, 3)
	if FromArray(v.Array()) != v {
		t.Error("Array/FromArray should round-trip")
	}
}
