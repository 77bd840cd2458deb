package core

import "fmt"

// BVHNode is a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Shapes for leaf nodes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy for fast ray-shape intersection. It is
// built once before rendering and is read-only afterwards, so it can be
// shared freely across render workers.
type BVH struct {
	Root *BVHNode
}

// shapeInfo caches the bounds and centroid of a shape during construction
type shapeInfo struct {
	bounds   AABB
	centroid Vec3
	shape    Shape
}

// NewBVH constructs a BVH from a slice of shapes. An empty slice produces a
// BVH that misses every ray.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	infos := make([]shapeInfo, len(shapes))
	for i, shape := range shapes {
		bounds := shape.BoundingBox()
		infos[i] = shapeInfo{
			bounds:   bounds,
			centroid: bounds.Centroid(),
			shape:    shape,
		}
	}

	return &BVH{Root: buildBVH(infos)}
}

// buildBVH recursively partitions shapes by centroid against the midpoint of
// the centroid bounds along the axis of maximum extent.
func buildBVH(infos []shapeInfo) *BVHNode {
	bounds := infos[0].bounds
	for _, info := range infos[1:] {
		bounds = bounds.Union(info.bounds)
	}

	if len(infos) == 1 {
		return &BVHNode{
			BoundingBox: bounds,
			Shapes:      []Shape{infos[0].shape},
		}
	}

	centroidBounds := NewAABBPoint(infos[0].centroid)
	for _, info := range infos[1:] {
		centroidBounds = centroidBounds.Union(NewAABBPoint(info.centroid))
	}
	axis := centroidBounds.MaximumExtent()

	// All centroids coincide, so no split can make progress. Keep the whole
	// group in one leaf and let the linear scan handle it.
	if centroidBounds.Min.Component(axis) == centroidBounds.Max.Component(axis) {
		shapes := make([]Shape, len(infos))
		for i, info := range infos {
			shapes[i] = info.shape
		}
		return &BVHNode{BoundingBox: bounds, Shapes: shapes}
	}

	midpoint := centroidBounds.Centroid().Component(axis)
	left := make([]shapeInfo, 0, len(infos))
	right := make([]shapeInfo, 0, len(infos))
	for _, info := range infos {
		if info.centroid.Component(axis) < midpoint {
			left = append(left, info)
		} else {
			right = append(right, info)
		}
	}

	// The degenerate-centroid case above is the only way a midpoint split
	// can fail to separate the group. Guarantees termination.
	if len(left) == 0 || len(left) == len(infos) {
		panic(fmt.Sprintf("bvh: midpoint split on axis %d failed to partition %d shapes", axis, len(infos)))
	}

	return &BVHNode{
		BoundingBox: bounds,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// Hit returns the closest intersection within [tMin, tMax], if any
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.hit(ray, tMin, tMax)
}

func (node *BVHNode) hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf: linear scan, narrowing tMax to the closest hit so far
	if node.Shapes != nil {
		var closest *HitRecord
		closestSoFar := tMax
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	// Branch: traverse left first, then give the right subtree only the
	// narrowed window so it can only return something closer
	leftHit, ok := node.Left.hit(ray, tMin, tMax)
	if !ok {
		return node.Right.hit(ray, tMin, tMax)
	}
	if rightHit, ok := node.Right.hit(ray, tMin, leftHit.T); ok {
		return rightHit, true
	}
	return leftHit, true
}
