package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/admintables/internal/table"
	"github.com/google/uuid"
)

// ErrInvalidDataset wraps every structural problem Validate finds.
var ErrInvalidDataset = errors.New("invalid dataset")

// Datasets is the set of collections a Source produces.
type Datasets struct {
	Categories    []Category      `yaml:"categories" json:"categories"`
	Subcategories []Subcategory   `yaml:"subcategories" json:"subcategories"`
	Tags          []Tag           `yaml:"tags" json:"tags"`
	Skills        []Skill         `yaml:"skills" json:"skills"`
	Taxonomy      []TaxonomyEntry `yaml:"pro_taxonomy" json:"pro_taxonomy"`
	Chats         []Chat          `yaml:"chats" json:"chats"`
	Users         []User          `yaml:"users" json:"users"`
}

// Counts returns the size of every dataset keyed by dataset name.
func (d Datasets) Counts() map[string]int {
	return map[string]int{
		DatasetCategories:    len(d.Categories),
		DatasetSubcategories: len(d.Subcategories),
		DatasetTags:          len(d.Tags),
		DatasetSkills:        len(d.Skills),
		DatasetTaxonomy:      len(d.Taxonomy),
		DatasetChats:         len(d.Chats),
		DatasetUsers:         len(d.Users),
	}
}

// Snapshot is one loaded, validated generation of the datasets.
// It is never modified after NewSnapshot returns; handlers share it freely.
type Snapshot struct {
	Datasets
	Version  uuid.UUID
	LoadedAt time.Time
	Source   string
	Warnings []string
}

// NewSnapshot stamps d with a fresh version.
func NewSnapshot(source string, d Datasets, warnings []string) *Snapshot {
	return &Snapshot{
		Datasets: d,
		Version:  uuid.New(),
		LoadedAt: time.Now().UTC(),
		Source:   source,
		Warnings: warnings,
	}
}

// Validate checks d for problems that would break rendering. Missing or
// duplicate ids and slugs are errors. Negative counts and foreign keys
// pointing nowhere only produce warnings: the renderers already show them
// as 0 and "Unknown".
func Validate(d Datasets) (warnings []string, err error) {
	var errs []error
	errs = append(errs, checkIdentity(DatasetCategories, d.Categories)...)
	errs = append(errs, checkIdentity(DatasetSubcategories, d.Subcategories)...)
	errs = append(errs, checkIdentity(DatasetTags, d.Tags)...)
	errs = append(errs, checkIdentity(DatasetSkills, d.Skills)...)
	errs = append(errs, checkIdentity(DatasetTaxonomy, d.Taxonomy)...)
	errs = append(errs, checkIdentity(DatasetChats, d.Chats)...)
	errs = append(errs, checkIdentity(DatasetUsers, d.Users)...)

	categories := idSet(d.Categories)
	for _, s := range d.Subcategories {
		warnings = appendDangling(warnings, DatasetSubcategories, s.ID, "categoryId", s.CategoryID, categories)
		warnings = appendNegative(warnings, DatasetSubcategories, s.ID, "skillCount", s.SkillCount)
	}
	for _, s := range d.Skills {
		warnings = appendDangling(warnings, DatasetSkills, s.ID, "categoryId", s.CategoryID, categories)
		warnings = appendNegative(warnings, DatasetSkills, s.ID, "proCount", s.ProCount)
	}
	for _, c := range d.Categories {
		warnings = appendNegative(warnings, DatasetCategories, c.ID, "subcategoryCount", c.SubcategoryCount)
		warnings = appendNegative(warnings, DatasetCategories, c.ID, "skillCount", c.SkillCount)
	}
	for _, t := range d.Tags {
		warnings = appendNegative(warnings, DatasetTags, t.ID, "usageCount", t.UsageCount)
	}
	taxonomy := idSet(d.Taxonomy)
	for _, e := range d.Taxonomy {
		warnings = appendDangling(warnings, DatasetTaxonomy, e.ID, "parentId", e.ParentID, taxonomy)
		warnings = appendNegative(warnings, DatasetTaxonomy, e.ID, "childCount", e.ChildCount)
	}
	users := idSet(d.Users)
	for _, c := range d.Chats {
		warnings = appendDangling(warnings, DatasetChats, c.ID, "userId", c.UserID, users)
		warnings = appendNegative(warnings, DatasetChats, c.ID, "messageCount", c.MessageCount)
	}
	for _, u := range d.Users {
		warnings = appendNegative(warnings, DatasetUsers, u.ID, "chatCount", u.ChatCount)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
	}
	return warnings, nil
}

func checkIdentity[T table.Item](dataset string, items []T) []error {
	var errs []error
	ids := make(map[string]int, len(items))
	slugs := make(map[string]int, len(items))
	for i, item := range items {
		id, slug := item.ItemID(), item.ItemSlug()
		if id == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: empty id", dataset, i))
		} else if prev, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate id %q (first at %d)", dataset, i, id, prev))
		} else {
			ids[id] = i
		}
		if slug == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: empty slug", dataset, i))
		} else if prev, dup := slugs[slug]; dup {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate slug %q (first at %d)", dataset, i, slug, prev))
		} else {
			slugs[slug] = i
		}
	}
	return errs
}

func idSet[T table.Item](items []T) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.ItemID()] = true
	}
	return set
}

func appendDangling(warnings []string, dataset, id, field, ref string, known map[string]bool) []string {
	if ref == "" || known[ref] {
		return warnings
	}
	return append(warnings, fmt.Sprintf("%s %s: %s %q matches no record", dataset, id, field, ref))
}

func appendNegative(warnings []string, dataset, id, field string, n *int) []string {
	if n == nil || *n >= 0 {
		return warnings
	}
	return append(warnings, fmt.Sprintf("%s %s: negative %s %d", dataset, id, field, *n))
}
