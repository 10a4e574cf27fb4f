package views

import (
	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

func init() {
	registerCategories()
	registerSubcategories()
}

func registerCategories() {
	const base = "/admin/categories"
	subcategories := table.IntField[catalog.Category]("subcategoryCount")
	skills := table.IntField[catalog.Category]("skillCount")

	Register(define(Info{
		Key:      "categories",
		Group:    "Marketplace",
		Label:    "Categories",
		BasePath: base,
	}, func(*catalog.Snapshot) table.View[catalog.Category] {
		return table.View[catalog.Category]{
			Key:      "categories",
			Title:    "Categories",
			BasePath: base,
			Columns: []table.Column[catalog.Category]{
				table.IDColumn[catalog.Category](),
				table.ImageColumn[catalog.Category](),
				table.LabelColumn[catalog.Category](base),
				table.SlugColumn[catalog.Category](),
				table.CountColumn("subcategories", "Subcategories", subcategories),
				table.CountColumn("skills", "Skills", skills),
				table.FeaturedColumn[catalog.Category](),
				table.ActionsColumn[catalog.Category](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonImage(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonCount("Subcategories"),
				table.SkeletonCount("Skills"),
				table.SkeletonFeatured(),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.Category](),
				table.FeaturedFilter[catalog.Category](),
			),
			Sorts: []table.SortMode[catalog.Category]{
				table.ByLabel[catalog.Category]("Name (A-Z)"),
				table.ByLabelDesc[catalog.Category]("label-desc", "Name (Z-A)"),
				table.ByFeatured[catalog.Category]("featured", "Featured first"),
				table.ByCountDesc("subcategories", "Most subcategories", subcategories),
				table.ByCountDesc("skills", "Most skills", skills),
			},
			Filters:      []table.FilterControl{table.FeaturedControl()},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.Category { return s.Categories }))
}

func registerSubcategories() {
	const base = "/admin/subcategories"
	category := table.StringField[catalog.Subcategory]("categoryId")
	skills := table.IntField[catalog.Subcategory]("skillCount")

	Register(define(Info{
		Key:      "subcategories",
		Group:    "Marketplace",
		Label:    "Subcategories",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.Subcategory] {
		categories := table.Refs(s.Categories)
		return table.View[catalog.Subcategory]{
			Key:      "subcategories",
			Title:    "Subcategories",
			BasePath: base,
			Columns: []table.Column[catalog.Subcategory]{
				table.IDColumn[catalog.Subcategory](),
				table.LabelColumn[catalog.Subcategory](base),
				table.SlugColumn[catalog.Subcategory](),
				table.LookupColumn("category", "Category", category, categories),
				table.CountColumn("skills", "Skills", skills),
				table.FeaturedColumn[catalog.Subcategory](),
				table.ActionsColumn[catalog.Subcategory](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonCategory(),
				table.SkeletonCount("Skills"),
				table.SkeletonFeatured(),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.Subcategory](),
				table.FeaturedFilter[catalog.Subcategory](),
				table.FieldEquals("category", category),
			),
			Sorts: []table.SortMode[catalog.Subcategory]{
				table.ByLabel[catalog.Subcategory]("Name (A-Z)"),
				table.ByLabelDesc[catalog.Subcategory]("label-desc", "Name (Z-A)"),
				table.ByFeatured[catalog.Subcategory]("featured", "Featured first"),
				table.ByCountDesc("skills", "Most skills", skills),
			},
			Filters: []table.FilterControl{
				table.RefControl("category", "Category", categories),
				table.FeaturedControl(),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.Subcategory { return s.Subcategories }))
}
