package table

import (
	"strings"
	"testing"
)

func TestSkeletonFactories_MatchLiveDefaults(t *testing.T) {
	count := IntField[record]("count")
	group := StringField[record]("group")

	live := Headers([]Column[record]{
		IDColumn[record](),
		ImageColumn[record](),
		LabelColumn[record]("/x"),
		SlugColumn[record](),
		TextColumn("type", "Type", group),
		TextColumn("level", "Level", group),
		LookupColumn("category", "Category", group, nil),
		LookupColumn("parent", "Parent", group, nil),
		CountColumn("skills", "Skills", count),
		FeaturedColumn[record](),
		ActionsColumn[record]("/x"),
	})
	skel := []SkeletonColumn{
		SkeletonID(),
		SkeletonImage(),
		SkeletonLabel(),
		SkeletonSlug(),
		SkeletonType(),
		SkeletonText("Level"),
		SkeletonCategory(),
		SkeletonParent(),
		SkeletonCount("Skills"),
		SkeletonFeatured(),
		SkeletonActions(),
	}

	if err := CheckParity(live, skel); err != nil {
		t.Fatalf("CheckParity: %v", err)
	}
	for i := range live {
		if live[i].Class != skel[i].Class {
			t.Errorf("column %d (%s): live class %q, skeleton class %q", i, live[i].Header, live[i].Class, skel[i].Class)
		}
	}
}

func TestCheckParity(t *testing.T) {
	live := []Header{{Header: "ID"}, {Header: "Name"}}

	tests := []struct {
		name    string
		skel    []SkeletonColumn
		wantErr string
	}{
		{"match", []SkeletonColumn{SkeletonID(), SkeletonLabel()}, ""},
		{"too few", []SkeletonColumn{SkeletonID()}, "count mismatch"},
		{"reordered", []SkeletonColumn{SkeletonLabel(), SkeletonID()}, "header mismatch"},
		{"renamed", []SkeletonColumn{SkeletonID(), SkeletonLabel(WithHeader("Label"))}, "header mismatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckParity(live, tt.skel)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSkeletonOverrides(t *testing.T) {
	c := SkeletonCount("Uses", WithClass("w-12"))
	if c.Header != "Uses" || c.Class != "w-12" || c.Shape != ShapePill {
		t.Errorf("skeleton = %+v", c)
	}
}
