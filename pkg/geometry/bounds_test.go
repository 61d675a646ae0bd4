package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 5, 0))

	if bbox.Min != (Vector3{X: -1, Y: 2, Z: 0}) {
		t.Errorf("Min wrong: got %v", bbox.Min)
	}
	if bbox.Max != (Vector3{X: 1, Y: 5, Z: 3}) {
		t.Errorf("Max wrong: got %v", bbox.Max)
	}
}

func TestBoundingBoxIsEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(0, 0, 0))
	if bbox.IsEmpty() {
		t.Error("extended bounding box should not be empty")
	}
}

func TestBoundingBoxCenterAndSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(4, 2, 6))

	center := bbox.Center()
	if center != (Vector3{X: 2, Y: 1, Z: 3}) {
		t.Errorf("Center wrong: got %v", center)
	}

	size := bbox.Size()
	if size != (Vector3{X: 4, Y: 2, Z: 6}) {
		t.Errorf("Size wrong: got %v", size)
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(3, 4, 0))

	if math.Abs(bbox.Diagonal()-5.0) > 1e-10 {
		t.Errorf("Diagonal wrong: got %v", bbox.Diagonal())
	}
}
