package ast

// Visitor provides an interface for traversing the document tree.
// Implement this interface to perform operations on nodes
// (validation, analysis, statistics, etc.).
type Visitor interface {
	VisitDocument(*Document) error
	VisitSection(*Section) error
	VisitBeat(*Beat) error
	VisitElement(*Element) error
}

// Walk traverses the tree starting from the document node and calls the
// visitor for each node in document order. It returns the first error
// encountered, or nil if traversal completes.
func Walk(doc *Document, visitor Visitor) error {
	if err := visitor.VisitDocument(doc); err != nil {
		return err
	}

	for _, section := range doc.Composition {
		if err := visitor.VisitSection(section); err != nil {
			return err
		}

		for _, beat := range section.Beats {
			if err := visitor.VisitBeat(beat); err != nil {
				return err
			}

			for _, element := range beat.Elements {
				if err := visitor.VisitElement(element); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
