package fonts

import "testing"

func TestFace(t *testing.T) {
	face, err := Face(12)
	if err != nil {
		t.Fatalf("Face(12) error = %v", err)
	}
	if face == nil {
		t.Fatal("Face(12) = nil, want a face")
	}

	// Metrics should be sane for a 12pt face.
	m := face.Metrics()
	if m.Height <= 0 {
		t.Errorf("Metrics().Height = %v, want > 0", m.Height)
	}
}

func TestFaceCaching(t *testing.T) {
	a, err := Face(14)
	if err != nil {
		t.Fatalf("Face(14) error = %v", err)
	}
	b, err := Face(14)
	if err != nil {
		t.Fatalf("Face(14) error = %v", err)
	}
	if a != b {
		t.Error("Face(14) returned distinct faces for the same size, want cached instance")
	}

	c, err := Face(22)
	if err != nil {
		t.Fatalf("Face(22) error = %v", err)
	}
	if a == c {
		t.Error("Face(14) and Face(22) returned the same face, want distinct instances")
	}
}

func TestMustFace(t *testing.T) {
	face := MustFace(11)
	if face == nil {
		t.Fatal("MustFace(11) = nil, want a face")
	}
}
