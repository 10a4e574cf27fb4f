package views

import (
	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

func init() {
	registerSkills()
}

func registerSkills() {
	const base = "/admin/skills"
	category := table.StringField[catalog.Skill]("categoryId")
	level := table.StringField[catalog.Skill]("level")
	pros := table.IntField[catalog.Skill]("proCount")

	Register(define(Info{
		Key:      "skills",
		Group:    "Marketplace",
		Label:    "Skills",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.Skill] {
		categories := table.Refs(s.Categories)
		return table.View[catalog.Skill]{
			Key:      "skills",
			Title:    "Skills",
			BasePath: base,
			Columns: []table.Column[catalog.Skill]{
				table.IDColumn[catalog.Skill](),
				table.LabelColumn[catalog.Skill](base),
				table.SlugColumn[catalog.Skill](),
				table.LookupColumn("category", "Category", category, categories),
				table.TextColumn("level", "Level", level),
				table.CountColumn("pros", "Pros", pros),
				table.FeaturedColumn[catalog.Skill](),
				table.ActionsColumn[catalog.Skill](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonCategory(),
				table.SkeletonText("Level"),
				table.SkeletonCount("Pros"),
				table.SkeletonFeatured(),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.Skill](),
				table.FieldEquals("category", category),
				table.FieldEquals("level", level),
				table.FeaturedFilter[catalog.Skill](),
			),
			Sorts: []table.SortMode[catalog.Skill]{
				table.ByLabel[catalog.Skill]("Name (A-Z)"),
				table.ByLabelDesc[catalog.Skill]("label-desc", "Name (Z-A)"),
				table.ByCountDesc("pros", "Most pros", pros),
			},
			Filters: []table.FilterControl{
				table.RefControl("category", "Category", categories),
				table.EnumControl("level", "Level", distinct(s.Skills, level)...),
				table.FeaturedControl(),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.Skill { return s.Skills }))
}
