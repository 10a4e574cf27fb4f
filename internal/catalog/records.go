// Package catalog holds the admin datasets: the record types, the immutable
// snapshot they are served from, the sources a snapshot can be loaded from
// and the store that keeps the current snapshot.
package catalog

// Dataset names. They double as Redis key suffixes, YAML keys and table names.
const (
	DatasetCategories    = "categories"
	DatasetSubcategories = "subcategories"
	DatasetTags          = "tags"
	DatasetSkills        = "skills"
	DatasetTaxonomy      = "pro_taxonomy"
	DatasetChats         = "chats"
	DatasetUsers         = "users"
)

// DatasetNames lists every dataset in load order.
var DatasetNames = []string{
	DatasetCategories,
	DatasetSubcategories,
	DatasetTags,
	DatasetSkills,
	DatasetTaxonomy,
	DatasetChats,
	DatasetUsers,
}

// Category is a top-level marketplace category.
type Category struct {
	ID               string `yaml:"id" json:"id" db:"id"`
	Label            string `yaml:"label" json:"label" db:"label"`
	Slug             string `yaml:"slug" json:"slug" db:"slug"`
	Featured         *bool  `yaml:"featured,omitempty" json:"featured,omitempty" db:"featured"`
	ImageURL         string `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty" db:"image_url"`
	ImageAlt         string `yaml:"imageAlt,omitempty" json:"imageAlt,omitempty" db:"image_alt"`
	SubcategoryCount *int   `yaml:"subcategoryCount,omitempty" json:"subcategoryCount,omitempty" db:"subcategory_count"`
	SkillCount       *int   `yaml:"skillCount,omitempty" json:"skillCount,omitempty" db:"skill_count"`
}

func (c Category) ItemID() string          { return c.ID }
func (c Category) ItemLabel() string       { return c.Label }
func (c Category) ItemSlug() string        { return c.Slug }
func (c Category) FeaturedFlag() bool      { return flag(c.Featured) }
func (c Category) Image() (string, string) { return c.ImageURL, c.ImageAlt }

func (c Category) Field(name string) (any, bool) {
	switch name {
	case "imageUrl":
		return text(c.ImageURL)
	case "imageAlt":
		return text(c.ImageAlt)
	case "subcategoryCount":
		return count(c.SubcategoryCount)
	case "skillCount":
		return count(c.SkillCount)
	}
	return nil, false
}

// Subcategory belongs to one category.
type Subcategory struct {
	ID         string `yaml:"id" json:"id" db:"id"`
	Label      string `yaml:"label" json:"label" db:"label"`
	Slug       string `yaml:"slug" json:"slug" db:"slug"`
	CategoryID string `yaml:"categoryId" json:"categoryId" db:"category_id"`
	Featured   *bool  `yaml:"featured,omitempty" json:"featured,omitempty" db:"featured"`
	SkillCount *int   `yaml:"skillCount,omitempty" json:"skillCount,omitempty" db:"skill_count"`
}

func (s Subcategory) ItemID() string     { return s.ID }
func (s Subcategory) ItemLabel() string  { return s.Label }
func (s Subcategory) ItemSlug() string   { return s.Slug }
func (s Subcategory) FeaturedFlag() bool { return flag(s.Featured) }

func (s Subcategory) Field(name string) (any, bool) {
	switch name {
	case "categoryId":
		return text(s.CategoryID)
	case "skillCount":
		return count(s.SkillCount)
	}
	return nil, false
}

// Tag is a free-form label attached to listings.
type Tag struct {
	ID         string `yaml:"id" json:"id" db:"id"`
	Label      string `yaml:"label" json:"label" db:"label"`
	Slug       string `yaml:"slug" json:"slug" db:"slug"`
	Type       string `yaml:"type,omitempty" json:"type,omitempty" db:"type"`
	UsageCount *int   `yaml:"usageCount,omitempty" json:"usageCount,omitempty" db:"usage_count"`
}

func (t Tag) ItemID() string    { return t.ID }
func (t Tag) ItemLabel() string { return t.Label }
func (t Tag) ItemSlug() string  { return t.Slug }

func (t Tag) Field(name string) (any, bool) {
	switch name {
	case "type":
		return text(t.Type)
	case "usageCount":
		return count(t.UsageCount)
	}
	return nil, false
}

// Skill is something a pro offers, filed under a category.
type Skill struct {
	ID         string `yaml:"id" json:"id" db:"id"`
	Label      string `yaml:"label" json:"label" db:"label"`
	Slug       string `yaml:"slug" json:"slug" db:"slug"`
	CategoryID string `yaml:"categoryId" json:"categoryId" db:"category_id"`
	Level      string `yaml:"level,omitempty" json:"level,omitempty" db:"level"`
	Featured   *bool  `yaml:"featured,omitempty" json:"featured,omitempty" db:"featured"`
	ProCount   *int   `yaml:"proCount,omitempty" json:"proCount,omitempty" db:"pro_count"`
}

func (s Skill) ItemID() string     { return s.ID }
func (s Skill) ItemLabel() string  { return s.Label }
func (s Skill) ItemSlug() string   { return s.Slug }
func (s Skill) FeaturedFlag() bool { return flag(s.Featured) }

func (s Skill) Field(name string) (any, bool) {
	switch name {
	case "categoryId":
		return text(s.CategoryID)
	case "level":
		return text(s.Level)
	case "proCount":
		return count(s.ProCount)
	}
	return nil, false
}

// TaxonomyEntry is a node of the pro taxonomy. Root entries have no parent.
type TaxonomyEntry struct {
	ID         string `yaml:"id" json:"id" db:"id"`
	Label      string `yaml:"label" json:"label" db:"label"`
	Slug       string `yaml:"slug" json:"slug" db:"slug"`
	Type       string `yaml:"type,omitempty" json:"type,omitempty" db:"type"`
	ParentID   string `yaml:"parentId,omitempty" json:"parentId,omitempty" db:"parent_id"`
	ChildCount *int   `yaml:"childCount,omitempty" json:"childCount,omitempty" db:"child_count"`
}

func (e TaxonomyEntry) ItemID() string    { return e.ID }
func (e TaxonomyEntry) ItemLabel() string { return e.Label }
func (e TaxonomyEntry) ItemSlug() string  { return e.Slug }

func (e TaxonomyEntry) Field(name string) (any, bool) {
	switch name {
	case "type":
		return text(e.Type)
	case "parentId":
		return text(e.ParentID)
	case "childCount":
		return count(e.ChildCount)
	}
	return nil, false
}

// Chat is a conversation thread started by a user.
type Chat struct {
	ID           string `yaml:"id" json:"id" db:"id"`
	Label        string `yaml:"label" json:"label" db:"label"`
	Slug         string `yaml:"slug" json:"slug" db:"slug"`
	Type         string `yaml:"type,omitempty" json:"type,omitempty" db:"type"`
	UserID       string `yaml:"userId,omitempty" json:"userId,omitempty" db:"user_id"`
	MessageCount *int   `yaml:"messageCount,omitempty" json:"messageCount,omitempty" db:"message_count"`
}

func (c Chat) ItemID() string    { return c.ID }
func (c Chat) ItemLabel() string { return c.Label }
func (c Chat) ItemSlug() string  { return c.Slug }

func (c Chat) Field(name string) (any, bool) {
	switch name {
	case "type":
		return text(c.Type)
	case "userId":
		return text(c.UserID)
	case "messageCount":
		return count(c.MessageCount)
	}
	return nil, false
}

// User is an account on the platform.
type User struct {
	ID        string `yaml:"id" json:"id" db:"id"`
	Label     string `yaml:"label" json:"label" db:"label"`
	Slug      string `yaml:"slug" json:"slug" db:"slug"`
	Role      string `yaml:"role,omitempty" json:"role,omitempty" db:"role"`
	ImageURL  string `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty" db:"image_url"`
	ImageAlt  string `yaml:"imageAlt,omitempty" json:"imageAlt,omitempty" db:"image_alt"`
	ChatCount *int   `yaml:"chatCount,omitempty" json:"chatCount,omitempty" db:"chat_count"`
}

func (u User) ItemID() string          { return u.ID }
func (u User) ItemLabel() string       { return u.Label }
func (u User) ItemSlug() string        { return u.Slug }
func (u User) Image() (string, string) { return u.ImageURL, u.ImageAlt }

func (u User) Field(name string) (any, bool) {
	switch name {
	case "role", "type":
		return text(u.Role)
	case "imageUrl":
		return text(u.ImageURL)
	case "imageAlt":
		return text(u.ImageAlt)
	case "chatCount":
		return count(u.ChatCount)
	}
	return nil, false
}

func flag(b *bool) bool { return b != nil && *b }

func text(s string) (any, bool) { return s, s != "" }

func count(n *int) (any, bool) {
	if n == nil {
		return nil, false
	}
	return *n, true
}
