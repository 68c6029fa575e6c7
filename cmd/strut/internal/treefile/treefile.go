// Package treefile loads container trees from the YAML tree-description
// format used by the strut inspector CLI.
//
// The format mirrors the box.Container specification fields one to one;
// it is a debugging surface, not a markup language.
package treefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/geometry"
)

// Node is the YAML representation of one container.
type Node struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text,omitempty"`
	Level int    `yaml:"level,omitempty"`

	Width  *Dim `yaml:"width,omitempty"`
	Height *Dim `yaml:"height,omitempty"`

	Direction string `yaml:"direction,omitempty"`
	OverflowX string `yaml:"overflow_x,omitempty"`
	OverflowY string `yaml:"overflow_y,omitempty"`

	Position string `yaml:"position,omitempty"`
	Left     *Dim   `yaml:"left,omitempty"`
	Right    *Dim   `yaml:"right,omitempty"`
	Top      *Dim   `yaml:"top,omitempty"`
	Bottom   *Dim   `yaml:"bottom,omitempty"`

	Padding *Insets `yaml:"padding,omitempty"`
	Margin  *Insets `yaml:"margin,omitempty"`

	Justify   string  `yaml:"justify,omitempty"`
	ColumnGap float64 `yaml:"column_gap,omitempty"`
	RowGap    float64 `yaml:"row_gap,omitempty"`

	FontSize float64 `yaml:"font_size,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

// Dim is a YAML-parseable size specification: a bare number, "NN%",
// "auto", or a min()/max() expression over those.
type Dim struct {
	spec box.Dimension
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dim) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("dimension must be a scalar, got %s", node.Tag)
	}
	spec, err := ParseDimension(node.Value)
	if err != nil {
		return err
	}
	d.spec = spec
	return nil
}

// ParseDimension parses a dimension expression. Empty and "auto" return
// nil (content-based sizing).
func ParseDimension(s string) (box.Dimension, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "" || lower == "auto":
		return nil, nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q", s)
		}
		return box.Percent(v), nil
	case strings.HasPrefix(lower, "min(") && strings.HasSuffix(s, ")"):
		a, b, err := splitArgs(s[4 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid expression %q: %w", s, err)
		}
		return box.Min(a, b), nil
	case strings.HasPrefix(lower, "max(") && strings.HasSuffix(s, ")"):
		a, b, err := splitArgs(s[4 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid expression %q: %w", s, err)
		}
		return box.Max(a, b), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q", s)
		}
		return box.Fixed(v), nil
	}
}

// splitArgs splits a two-argument expression body on its top-level comma
// and parses both sides.
func splitArgs(body string) (box.Dimension, box.Dimension, error) {
	depth := 0
	split := -1
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				split = i
			}
		}
	}
	if split < 0 {
		return nil, nil, fmt.Errorf("expected two arguments in %q", body)
	}
	a, err := ParseDimension(body[:split])
	if err != nil {
		return nil, nil, err
	}
	b, err := ParseDimension(body[split+1:])
	if err != nil {
		return nil, nil, err
	}
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("auto is not allowed inside expressions")
	}
	return a, b, nil
}

// Insets is a YAML-parseable EdgeInsets: a bare number applies uniformly,
// a mapping sets individual sides.
type Insets struct {
	geometry.EdgeInsets
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (in *Insets) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid insets %q", node.Value)
		}
		in.EdgeInsets = geometry.EdgeInsetsAll(v)
		return nil
	}
	var sides struct {
		Left   float64 `yaml:"left"`
		Top    float64 `yaml:"top"`
		Right  float64 `yaml:"right"`
		Bottom float64 `yaml:"bottom"`
	}
	if err := node.Decode(&sides); err != nil {
		return err
	}
	in.EdgeInsets = geometry.EdgeInsets(sides)
	return nil
}

// Parse decodes a YAML tree description into a container tree.
func Parse(data []byte) (*box.Container, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tree description: %w", err)
	}
	return root.Container()
}

// LoadFile reads and parses a tree-description file.
func LoadFile(path string) (*box.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Container converts the node and its children into a box.Container tree.
func (n *Node) Container() (*box.Container, error) {
	kind, err := parseKind(n.Kind)
	if err != nil {
		return nil, err
	}
	direction, err := parseDirection(n.Direction)
	if err != nil {
		return nil, err
	}
	overflowX, err := parseOverflow(n.OverflowX)
	if err != nil {
		return nil, err
	}
	overflowY, err := parseOverflow(n.OverflowY)
	if err != nil {
		return nil, err
	}
	position, err := parsePosition(n.Position)
	if err != nil {
		return nil, err
	}
	justify, err := parseJustify(n.Justify)
	if err != nil {
		return nil, err
	}

	c := &box.Container{
		Element:        box.Element{Kind: kind, Text: n.Text, Level: n.Level},
		Direction:      direction,
		OverflowX:      overflowX,
		OverflowY:      overflowY,
		Position:       position,
		JustifyContent: justify,
		ColumnGap:      n.ColumnGap,
		RowGap:         n.RowGap,
		FontSize:       n.FontSize,
		Hidden:         n.Hidden,
	}
	if n.Width != nil {
		c.Width = n.Width.spec
	}
	if n.Height != nil {
		c.Height = n.Height.spec
	}
	if n.Left != nil {
		c.Left = n.Left.spec
	}
	if n.Right != nil {
		c.Right = n.Right.spec
	}
	if n.Top != nil {
		c.Top = n.Top.spec
	}
	if n.Bottom != nil {
		c.Bottom = n.Bottom.spec
	}
	if n.Padding != nil {
		c.Padding = n.Padding.EdgeInsets
	}
	if n.Margin != nil {
		c.Margin = n.Margin.EdgeInsets
	}

	for _, childNode := range n.Children {
		child, err := childNode.Container()
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, child)
	}
	return c, nil
}

func parseKind(s string) (box.ElementKind, error) {
	switch strings.ToLower(s) {
	case "", "div":
		return box.KindDiv, nil
	case "table":
		return box.KindTable, nil
	case "thead":
		return box.KindTableHead, nil
	case "tbody":
		return box.KindTableBody, nil
	case "tr":
		return box.KindTableRow, nil
	case "th":
		return box.KindTableHeaderCell, nil
	case "td":
		return box.KindTableCell, nil
	case "heading":
		return box.KindHeading, nil
	case "raw":
		return box.KindRaw, nil
	default:
		return 0, fmt.Errorf("unknown element kind %q", s)
	}
}

func parseDirection(s string) (box.Direction, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return box.DirectionRow, nil
	case "column":
		return box.DirectionColumn, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseOverflow(s string) (box.Overflow, error) {
	switch strings.ToLower(s) {
	case "", "expand", "show":
		return box.OverflowExpand, nil
	case "squash":
		return box.OverflowSquash, nil
	case "scroll":
		return box.OverflowScroll, nil
	case "auto":
		return box.OverflowAuto, nil
	case "wrap":
		return box.OverflowWrap, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q", s)
	}
}

func parsePosition(s string) (box.PositionMode, error) {
	switch strings.ToLower(s) {
	case "", "static":
		return box.PositionStatic, nil
	case "relative":
		return box.PositionRelative, nil
	case "absolute":
		return box.PositionAbsolute, nil
	case "fixed":
		return box.PositionFixed, nil
	default:
		return 0, fmt.Errorf("unknown position mode %q", s)
	}
}

func parseJustify(s string) (box.Justify, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return box.JustifyStart, nil
	case "center":
		return box.JustifyCenter, nil
	case "space-between", "space_between":
		return box.JustifySpaceBetween, nil
	case "space-evenly", "space_evenly":
		return box.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify value %q", s)
	}
}
