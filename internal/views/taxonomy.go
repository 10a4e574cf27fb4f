package views

import (
	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

func init() {
	registerTaxonomy()
}

// Taxonomy entries point at their parent entry in the same dataset.
func registerTaxonomy() {
	const base = "/admin/pro-taxonomy"
	entryType := table.StringField[catalog.TaxonomyEntry]("type")
	parent := table.StringField[catalog.TaxonomyEntry]("parentId")
	children := table.IntField[catalog.TaxonomyEntry]("childCount")

	Register(define(Info{
		Key:      "pro-taxonomy",
		Group:    "Pros",
		Label:    "Pro Taxonomy",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.TaxonomyEntry] {
		return table.View[catalog.TaxonomyEntry]{
			Key:      "pro-taxonomy",
			Title:    "Pro Taxonomy",
			BasePath: base,
			Columns: []table.Column[catalog.TaxonomyEntry]{
				table.IDColumn[catalog.TaxonomyEntry](),
				table.LabelColumn[catalog.TaxonomyEntry](base),
				table.SlugColumn[catalog.TaxonomyEntry](),
				table.TextColumn("type", "Type", entryType),
				table.LookupColumn("parent", "Parent", parent, table.Refs(s.Taxonomy)),
				table.CountColumn("children", "Children", children),
				table.ActionsColumn[catalog.TaxonomyEntry](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonType(),
				table.SkeletonParent(),
				table.SkeletonCount("Children"),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.TaxonomyEntry](),
				table.FieldEquals("type", entryType),
			),
			Sorts: []table.SortMode[catalog.TaxonomyEntry]{
				table.ByLabel[catalog.TaxonomyEntry]("Name (A-Z)"),
				table.ByLabelDesc[catalog.TaxonomyEntry]("label-desc", "Name (Z-A)"),
				table.ByCountDesc("children", "Most children", children),
			},
			Filters: []table.FilterControl{
				table.EnumControl("type", "Type", distinct(s.Taxonomy, entryType)...),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.TaxonomyEntry { return s.Taxonomy }))
}
