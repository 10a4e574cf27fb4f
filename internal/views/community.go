package views

import (
	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/table"
)

func init() {
	registerChats()
	registerUsers()
}

func registerChats() {
	const base = "/admin/chats"
	chatType := table.StringField[catalog.Chat]("type")
	user := table.StringField[catalog.Chat]("userId")
	messages := table.IntField[catalog.Chat]("messageCount")

	Register(define(Info{
		Key:      "chats",
		Group:    "Community",
		Label:    "Chats",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.Chat] {
		return table.View[catalog.Chat]{
			Key:      "chats",
			Title:    "Chats",
			BasePath: base,
			Columns: []table.Column[catalog.Chat]{
				table.IDColumn[catalog.Chat](),
				table.LabelColumn[catalog.Chat](base),
				table.SlugColumn[catalog.Chat](),
				table.TextColumn("type", "Type", chatType),
				table.LookupColumn("user", "User", user, table.Refs(s.Users)),
				table.CountColumn("messages", "Messages", messages),
				table.ActionsColumn[catalog.Chat](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonType(),
				table.SkeletonParent(table.WithHeader("User")),
				table.SkeletonCount("Messages"),
				table.SkeletonActions(),
			},
			Filter: table.AllOf(
				table.StandardSearch[catalog.Chat](),
				table.FieldEquals("type", chatType),
			),
			Sorts: []table.SortMode[catalog.Chat]{
				table.ByLabel[catalog.Chat]("Name (A-Z)"),
				table.ByLabelDesc[catalog.Chat]("label-desc", "Name (Z-A)"),
				table.ByCountDesc("messages", "Most messages", messages),
			},
			Filters: []table.FilterControl{
				table.EnumControl("type", "Type", distinct(s.Chats, chatType)...),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.Chat { return s.Chats }))
}

func registerUsers() {
	const base = "/admin/users"
	role := table.StringField[catalog.User]("role")
	chats := table.IntField[catalog.User]("chatCount")

	Register(define(Info{
		Key:      "users",
		Group:    "Community",
		Label:    "Users",
		BasePath: base,
	}, func(s *catalog.Snapshot) table.View[catalog.User] {
		return table.View[catalog.User]{
			Key:      "users",
			Title:    "Users",
			BasePath: base,
			Columns: []table.Column[catalog.User]{
				table.IDColumn[catalog.User](),
				table.ImageColumn[catalog.User](table.WithHeader("Avatar")),
				table.LabelColumn[catalog.User](base),
				table.SlugColumn[catalog.User](),
				table.TextColumn("role", "Role", role),
				table.CountColumn("chats", "Chats", chats),
				table.ActionsColumn[catalog.User](base),
			},
			Skeleton: []table.SkeletonColumn{
				table.SkeletonID(),
				table.SkeletonImage(table.WithHeader("Avatar")),
				table.SkeletonLabel(),
				table.SkeletonSlug(),
				table.SkeletonType(table.WithHeader("Role")),
				table.SkeletonCount("Chats"),
				table.SkeletonActions(),
			},
			// The role filter uses the generic "type" key like every other view.
			Filter: table.AllOf(
				table.StandardSearch[catalog.User](),
				table.FieldEquals("type", role),
			),
			Sorts: []table.SortMode[catalog.User]{
				table.ByLabel[catalog.User]("Name (A-Z)"),
				table.ByLabelDesc[catalog.User]("label-desc", "Name (Z-A)"),
				table.ByCountDesc("chats", "Most chats", chats),
			},
			Filters: []table.FilterControl{
				table.EnumControl("type", "Role", distinct(s.Users, role)...),
			},
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		}
	}, func(s *catalog.Snapshot) []catalog.User { return s.Users }))
}
