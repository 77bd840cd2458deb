package ppm

import (
	"bytes"
	"testing"

	"github.com/spectra-render/spectra/pkg/core"
)

func TestEncode(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0.5, 0.5, 0.5),
	}

	var buf bytes.Buffer
	if err := Encode(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n128 128 128\n"
	if buf.String() != want {
		t.Errorf("Encode output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestEncode_ClampsOutOfRangeChannels(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(1.5, -0.3, 0.999)}

	var buf bytes.Buffer
	if err := Encode(&buf, 1, 1, pixels); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "P3\n1 1\n255\n255 0 255\n"
	if buf.String() != want {
		t.Errorf("Encode output: %q, want %q", buf.String(), want)
	}
}

func TestEncode_BufferSizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, 2, 2, make([]core.Vec3, 3)); err == nil {
		t.Error("Expected error for mismatched pixel count")
	}
}
