package structure

import "github.com/tsawler/typeset/model"

// buildHierarchy attaches every element to its nearest enclosing heading
// and returns the parent-to-children forest. Headings maintain a stack
// ordered by level: a new heading pops all entries at its own level or
// deeper, attaches to whatever remains on top, then pushes itself.
// Non-heading elements attach to the current stack top.
//
// The function mutates each element's ParentID in place.
func buildHierarchy(elements []model.DocumentElement) map[string][]string {
	hierarchy := make(map[string][]string)

	type frame struct {
		id    string
		level int
	}
	var stack []frame

	attach := func(el *model.DocumentElement) {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		el.ParentID = top.id
		hierarchy[top.id] = append(hierarchy[top.id], el.ID)
	}

	for i := range elements {
		el := &elements[i]
		if !el.Type.IsHeading() {
			attach(el)
			continue
		}

		level := el.Level
		if level == 0 {
			level = el.Type.HeadingLevel()
		}
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		attach(el)
		stack = append(stack, frame{id: el.ID, level: level})
	}

	return hierarchy
}
