package fields

import "sort"

// Section is a named, ordered group of descriptors.
type Section struct {
	Name   string       `json:"name"`
	Fields []Descriptor `json:"fields"`
}

// Collection is the checkout field set, grouped by section in display order.
type Collection struct {
	Sections []Section `json:"sections"`
}

// NewCollection builds a collection from sections, sorting each by priority.
func NewCollection(sections ...Section) Collection {
	c := Collection{Sections: make([]Section, 0, len(sections))}
	for _, section := range sections {
		c = Merge(c, section.Name, section.Fields...)
	}
	return c
}

// Section returns the descriptors of name, nil when absent.
func (c Collection) Section(name string) []Descriptor {
	if idx := c.sectionIndex(name); idx >= 0 {
		return c.Sections[idx].Fields
	}
	return nil
}

// Field looks up a descriptor by section and key.
func (c Collection) Field(section, key string) (Descriptor, bool) {
	for _, d := range c.Section(section) {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Keys returns the keys of section in order.
func (c Collection) Keys(section string) []string {
	fields := c.Section(section)
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, len(fields))
	for i, d := range fields {
		keys[i] = d.Key
	}
	return keys
}

// Update applies fn to the descriptor at section/key in place. It reports
// whether the descriptor exists.
func (c *Collection) Update(section, key string, fn func(*Descriptor)) bool {
	idx := c.sectionIndex(section)
	if idx < 0 || fn == nil {
		return false
	}
	fields := c.Sections[idx].Fields
	for i := range fields {
		if fields[i].Key == key {
			fn(&fields[i])
			return true
		}
	}
	return false
}

// Clone returns a deep copy of c.
func (c Collection) Clone() Collection {
	if c.Sections == nil {
		return Collection{}
	}
	out := Collection{Sections: make([]Section, len(c.Sections))}
	for i, section := range c.Sections {
		cloned := Section{Name: section.Name}
		if section.Fields != nil {
			cloned.Fields = make([]Descriptor, len(section.Fields))
			for j, d := range section.Fields {
				cloned.Fields[j] = d.Clone()
			}
		}
		out.Sections[i] = cloned
	}
	return out
}

func (c Collection) sectionIndex(name string) int {
	for i, section := range c.Sections {
		if section.Name == name {
			return i
		}
	}
	return -1
}

// Merge returns a copy of existing with descriptors added to section. A
// descriptor whose key is already present replaces it in place. The section is
// then stably re-sorted by ascending priority. existing is not modified.
func Merge(existing Collection, section string, descriptors ...Descriptor) Collection {
	out := existing.Clone()
	idx := out.sectionIndex(section)
	if idx < 0 {
		out.Sections = append(out.Sections, Section{Name: section})
		idx = len(out.Sections) - 1
	}

	target := out.Sections[idx].Fields
	for _, d := range descriptors {
		replaced := false
		for i := range target {
			if target[i].Key == d.Key {
				target[i] = d.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			target = append(target, d.Clone())
		}
	}
	sortByPriority(target)
	out.Sections[idx].Fields = target
	return out
}

// Reorder returns a copy of c with every section stably sorted by priority.
func Reorder(c Collection) Collection {
	out := c.Clone()
	for i := range out.Sections {
		sortByPriority(out.Sections[i].Fields)
	}
	return out
}

// Sorted reports whether every section is in ascending priority order.
func Sorted(c Collection) bool {
	for _, section := range c.Sections {
		if !sort.SliceIsSorted(section.Fields, func(i, j int) bool {
			return section.Fields[i].Priority < section.Fields[j].Priority
		}) {
			return false
		}
	}
	return true
}

func sortByPriority(fields []Descriptor) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Priority < fields[j].Priority
	})
}
