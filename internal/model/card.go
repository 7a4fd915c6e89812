package model

// TextRun is a span of rendered text on a page. X and Y are the top-left
// of the bounding box in points. Produced fresh per page, never persisted.
type TextRun struct {
	Content  string
	FontSize float64
	X        float64
	Y        float64
}

// ClassifiedPage is the classifier's verdict for one page. HasBack is the
// only field set after creation, when a following page turns out to be
// this card's back side.
type ClassifiedPage struct {
	PageIndex int
	CardType  CardType
	CardName  string
	HasBack   bool
}

// Card is one extracted card with its rendered images. FrontImage is
// always written before BackImage is considered; BackImage is empty for
// single-sided cards.
type Card struct {
	Team       *Team
	CardType   CardType
	Name       string
	FrontImage string
	BackImage  string
}
