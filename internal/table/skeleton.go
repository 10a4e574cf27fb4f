package table

import "fmt"

// Shape is the placeholder drawn in a skeleton cell.
type Shape string

const (
	ShapeLine    Shape = "line"
	ShapeShort   Shape = "short"
	ShapeWide    Shape = "wide"
	ShapeSquare  Shape = "square"
	ShapePill    Shape = "pill"
	ShapeDot     Shape = "dot"
	ShapeButtons Shape = "buttons"
)

// SkeletonColumn is layout-only metadata for a loading placeholder column.
type SkeletonColumn struct {
	Header string `json:"header"`
	Shape  Shape  `json:"shape"`
	Class  string `json:"class,omitempty"`
}

func newSkeleton(header string, shape Shape, class string, opts []ColumnOption) SkeletonColumn {
	h := Header{Header: header, Class: class}
	for _, opt := range opts {
		opt(&h)
	}
	return SkeletonColumn{Header: h.Header, Shape: shape, Class: h.Class}
}

// The skeleton factories below default to the same header and class as their
// live counterparts in columns.go and accept the same overrides.

func SkeletonID(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("ID", ShapeShort, "w-24", opts)
}

func SkeletonLabel(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Name", ShapeWide, "", opts)
}

func SkeletonSlug(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Slug", ShapeLine, "", opts)
}

func SkeletonText(header string, opts ...ColumnOption) SkeletonColumn {
	return newSkeleton(header, ShapeLine, "", opts)
}

func SkeletonImage(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Image", ShapeSquare, "w-16", opts)
}

func SkeletonCount(header string, opts ...ColumnOption) SkeletonColumn {
	return newSkeleton(header, ShapePill, "w-24 text-right", opts)
}

func SkeletonFeatured(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Featured", ShapeDot, "w-20 text-center", opts)
}

// SkeletonCategory mirrors a lookup column pointing at a category.
func SkeletonCategory(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Category", ShapeLine, "", opts)
}

func SkeletonType(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Type", ShapePill, "", opts)
}

// SkeletonParent mirrors a lookup column pointing at a parent record.
func SkeletonParent(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Parent", ShapeLine, "", opts)
}

func SkeletonActions(opts ...ColumnOption) SkeletonColumn {
	return newSkeleton("Actions", ShapeButtons, "w-24 text-right", opts)
}

// CheckParity reports whether a skeleton list lines up with the live columns
// it stands in for: same count and same headers in the same order.
func CheckParity(live []Header, skeleton []SkeletonColumn) error {
	if len(live) != len(skeleton) {
		return fmt.Errorf("column count mismatch: %d live, %d skeleton", len(live), len(skeleton))
	}
	for i := range live {
		if live[i].Header != skeleton[i].Header {
			return fmt.Errorf("column %d header mismatch: live %q, skeleton %q", i, live[i].Header, skeleton[i].Header)
		}
	}
	return nil
}
