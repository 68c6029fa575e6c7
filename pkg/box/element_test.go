package box

import "testing"

func TestElementKind_String(t *testing.T) {
	tests := []struct {
		kind ElementKind
		want string
	}{
		{KindDiv, "div"},
		{KindTable, "table"},
		{KindTableHead, "thead"},
		{KindTableBody, "tbody"},
		{KindTableRow, "tr"},
		{KindTableHeaderCell, "th"},
		{KindTableCell, "td"},
		{KindHeading, "heading"},
		{KindRaw, "raw"},
		{ElementKind(99), "ElementKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestElement_Classification(t *testing.T) {
	if !(Element{Kind: KindTableHead}).IsTableSection() || (Element{Kind: KindTableRow}).IsTableSection() {
		t.Error("IsTableSection misclassified")
	}
	if !(Element{Kind: KindTableHeaderCell}).IsTableCell() || (Element{Kind: KindDiv}).IsTableCell() {
		t.Error("IsTableCell misclassified")
	}
	if !(Element{Kind: KindRaw}).IsText() || !(Element{Kind: KindHeading}).IsText() || (Element{Kind: KindDiv}).IsText() {
		t.Error("IsText misclassified")
	}
}

func TestHeadingScale(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 2.0}, {2, 1.5}, {3, 1.17}, {4, 1.0}, {5, 0.83}, {6, 0.67},
		{0, 1.0}, {7, 1.0},
	}
	for _, tt := range tests {
		if got := HeadingScale(tt.level); got != tt.want {
			t.Errorf("HeadingScale(%d) = %g, want %g", tt.level, got, tt.want)
		}
	}
}

func TestPositionMode_InFlow(t *testing.T) {
	if !PositionStatic.InFlow() || !PositionRelative.InFlow() {
		t.Error("static/relative should be in flow")
	}
	if PositionAbsolute.InFlow() || PositionFixed.InFlow() {
		t.Error("absolute/fixed should be out of flow")
	}
}

func TestPlacement_String(t *testing.T) {
	if got := DefaultPlacement.String(); got != "default" {
		t.Errorf("default placement = %q", got)
	}
	if got := WrapAt(2, 1).String(); got != "wrap(2,1)" {
		t.Errorf("WrapAt(2,1) = %q", got)
	}
}
