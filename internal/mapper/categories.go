package mapper

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

type CategoryEntry struct {
	Category domain.Category
	Rank     int
	Ranked   bool
	Active   bool
}

// ReadCategories reads every <categories> child of root. Ranked categories come out
// ordered by rank (worst first); unranked ones follow in document order.
func ReadCategories(root *xmltree.Node, sink errsink.Sink) ([]CategoryEntry, error) {
	var out []CategoryEntry
	seen := make(map[domain.Category]bool)
	for _, cn := range root.ChildrenNamed(TagCategories) {
		for i, n := range cn.ChildrenNamed(TagCategory) {
			entry, ok, err := readCategory(n, i, sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if seen[entry.Category] {
				if err := sink.Report(domain.ErrDuplicateValue, "category %q declared more than once", entry.Category.ID); err != nil {
					return nil, err
				}
				continue
			}
			seen[entry.Category] = true
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ranked != out[j].Ranked {
			return out[i].Ranked
		}
		return out[i].Ranked && out[i].Rank < out[j].Rank
	})
	return out, nil
}

func readCategory(n *xmltree.Node, pos int, sink errsink.Sink) (CategoryEntry, bool, error) {
	id, ok, err := requiredAttr(n, AttrID, fmt.Sprintf("category #%d", pos+1), sink)
	if !ok {
		return CategoryEntry{}, false, err
	}
	where := fmt.Sprintf("category %q", id)
	entry := CategoryEntry{Category: domain.Category{ID: id}}
	if entry.Active, ok, err = readBool(n, "active", where, true, sink); !ok {
		return CategoryEntry{}, false, err
	}
	rn, ok, err := atMostOne(n, "rank", where, sink)
	if !ok {
		return CategoryEntry{}, false, err
	}
	if rn != nil {
		v, ok, err := readNumber(rn, where+" rank", sink)
		if !ok {
			return CategoryEntry{}, false, err
		}
		if v != math.Trunc(v) {
			err := sink.Report(domain.ErrStructuralInvalidity, "%s: rank is not an integer: %v", where, v)
			return CategoryEntry{}, false, err
		}
		entry.Rank = int(v)
		entry.Ranked = true
	}
	return entry, true, nil
}

// ProfileBound is one <categoryProfile>.
type ProfileBound struct {
	Profile domain.Alternative
	Lower   domain.Category
	Upper   domain.Category
}

func ReadCategoriesProfiles(root *xmltree.Node, sink errsink.Sink) ([]ProfileBound, error) {
	var out []ProfileBound
	for _, cpn := range root.ChildrenNamed(TagCategoriesProfiles) {
		for i, n := range cpn.ChildrenNamed("categoryProfile") {
			bound, ok, err := readCategoryProfile(n, i, sink)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, bound)
			}
		}
	}
	return out, nil
}

func readCategoryProfile(n *xmltree.Node, pos int, sink errsink.Sink) (ProfileBound, bool, error) {
	where := fmt.Sprintf("categoryProfile #%d", pos+1)
	id, ok, err := requiredText(n, "alternativeID", where, sink)
	if !ok {
		return ProfileBound{}, false, err
	}
	where = fmt.Sprintf("categoryProfile %q", id)
	limits, ok, err := exactlyOne(n, "limits", where, sink)
	if !ok {
		return ProfileBound{}, false, err
	}
	bound := ProfileBound{Profile: domain.Alternative{ID: id}}
	for _, side := range []struct {
		tag string
		dst *domain.Category
	}{{"lowerCategory", &bound.Lower}, {"upperCategory", &bound.Upper}} {
		sn, ok, err := atMostOne(limits, side.tag, where, sink)
		if !ok {
			return ProfileBound{}, false, err
		}
		if sn == nil {
			continue
		}
		cid, ok, err := requiredText(sn, "categoryID", where+" "+side.tag, sink)
		if !ok {
			return ProfileBound{}, false, err
		}
		*side.dst = domain.Category{ID: cid}
	}
	if bound.Lower.ID == "" && bound.Upper.ID == "" {
		err := sink.Report(domain.ErrMissingRequiredField, "%s: limits name no category", where)
		return ProfileBound{}, false, err
	}
	return bound, true, nil
}

// WriteCategories renders categories with ranks 1..n, worst first.
func WriteCategories(cats []domain.Category) *xmltree.Node {
	n := xmltree.New(TagCategories)
	for i, c := range cats {
		n.Append(xmltree.New(TagCategory, xmltree.Attr{Name: AttrID, Value: c.ID}).Append(
			xmltree.New("rank").Append(xmltree.NewText("integer", strconv.Itoa(i+1))),
		))
	}
	return n
}

func WriteCategoriesProfiles(cp *domain.CategoriesProfiles) *xmltree.Node {
	n := xmltree.New(TagCategoriesProfiles)
	for _, p := range cp.Profiles() {
		limits := xmltree.New("limits")
		if c, ok := cp.Lower(p); ok {
			limits.Append(xmltree.New("lowerCategory").Append(xmltree.NewText("categoryID", c.ID)))
		}
		if c, ok := cp.Upper(p); ok {
			limits.Append(xmltree.New("upperCategory").Append(xmltree.NewText("categoryID", c.ID)))
		}
		n.Append(xmltree.New("categoryProfile").Append(xmltree.NewText("alternativeID", p.ID), limits))
	}
	return n
}
