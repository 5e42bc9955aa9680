package model

// DocumentType classifies the overall kind of document detected.
type DocumentType int

const (
	DocTypeReport DocumentType = iota
	DocTypeBook
	DocTypeArticle
	DocTypeMemo
	DocTypeManual
	DocTypeProposal
	DocTypePaper
)

func (dt DocumentType) String() string {
	switch dt {
	case DocTypeBook:
		return "book"
	case DocTypeArticle:
		return "article"
	case DocTypeMemo:
		return "memo"
	case DocTypeManual:
		return "manual"
	case DocTypeProposal:
		return "proposal"
	case DocTypePaper:
		return "paper"
	default:
		return "report"
	}
}

// StructureMetadata holds aggregate facts about a detected structure.
type StructureMetadata struct {
	WordCount  int
	HasTables  bool
	HasLists   bool
	HasCode    bool
	HasTOC     bool
	TypeCounts map[ElementType]int
}

// DocumentStructure is the whole-document result of structure detection.
type DocumentStructure struct {
	// Title is the inferred document title, or empty when none was found.
	Title string

	// Type is the inferred document type.
	Type DocumentType

	// Elements is the ordered list of detected elements.
	Elements []DocumentElement

	// Hierarchy maps an element id to the ids of its children. The map is
	// a forest: every child id appears under exactly one parent, and every
	// parent appears earlier in Elements than its children.
	Hierarchy map[string][]string

	// Metadata holds aggregate counts and presence flags.
	Metadata StructureMetadata
}

// ElementByID returns the element with the given id, or nil.
func (ds *DocumentStructure) ElementByID(id string) *DocumentElement {
	for i := range ds.Elements {
		if ds.Elements[i].ID == id {
			return &ds.Elements[i]
		}
	}
	return nil
}

// Children returns the child ids of the given element in document order.
func (ds *DocumentStructure) Children(id string) []string {
	if ds.Hierarchy == nil {
		return nil
	}
	return ds.Hierarchy[id]
}

// CountByType returns how many elements of the given type were detected.
func (ds *DocumentStructure) CountByType(et ElementType) int {
	if ds.Metadata.TypeCounts == nil {
		return 0
	}
	return ds.Metadata.TypeCounts[et]
}
