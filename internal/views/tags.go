package views

import (
	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

func init() {
	registerTags()
}

func registerTags() {
	const base = "/admin/tags"
	tagType := table.StringField[catalog.Tag]("type")
	usage := table.IntField[catalog.Tag]("usageCount")

	Register(define(Info{
		Key:      "tags",
		Group:    "Marketplace",
		Label:    "Tags",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.Tag] {
		return table.View[catalog.Tag]{
			Key:      "tags",
			Title:    "Tags",
			BasePath: base,
			Columns: []table.Column[catalog.Tag]{
				table.IDColumn[catalog.Tag](),
				table.LabelColumn[catalog.Tag](base),
				table.SlugColumn[catalog.Tag](),
				table.TextColumn("type", "Type", tagType),
				table.CountColumn("usage", "Usage", usage),
				table.ActionsColumn[catalog.Tag](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonType(),
				table.SkeletonCount("Usage"),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.Tag](),
				table.FieldEquals("type", tagType),
			),
			Sorts: []table.SortMode[catalog.Tag]{
				table.ByLabel[catalog.Tag]("Name (A-Z)"),
				table.ByLabelDesc[catalog.Tag]("label-desc", "Name (Z-A)"),
				table.ByCountDesc("usage", "Most used", usage),
			},
			Filters: []table.FilterControl{
				table.EnumControl("type", "Type", distinct(s.Tags, tagType)...),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.Tag { return s.Tags }))
}
