package treefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/geometry"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		isNil bool
	}{
		{"auto", "", true},
		{"", "", true},
		{"120", "120", false},
		{"12.5", "12.5", false},
		{"50%", "50%", false},
		{"min(50%, 80)", "min(50%, 80)", false},
		{"max(10, 25%)", "max(10, 25%)", false},
		{"min(max(10, 5%), 40)", "min(max(10, 5%), 40)", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dim, err := ParseDimension(tt.in)
			require.NoError(t, err)
			if tt.isNil {
				assert.Nil(t, dim)
				return
			}
			require.NotNil(t, dim)
			assert.Equal(t, tt.want, dim.String())
		})
	}
}

func TestParseDimension_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "12px", "%", "min(10)", "min(auto, 10)", "max(1, 2, 3)"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDimension(in)
			assert.Error(t, err)
		})
	}
}

func TestParse_FullTree(t *testing.T) {
	tree, err := Parse([]byte(`
kind: div
direction: column
width: 50%
height: 120
overflow_x: wrap
overflow_y: scroll
justify: space-between
column_gap: 4
row_gap: 8
padding: 10
margin:
  left: 1
  top: 2
children:
  - kind: heading
    text: Title
    level: 2
  - kind: raw
    text: body copy
    font_size: 12
  - kind: div
    position: absolute
    left: 5
    top: 10%
    hidden: true
`))
	require.NoError(t, err)

	assert.Equal(t, box.KindDiv, tree.Element.Kind)
	assert.Equal(t, box.DirectionColumn, tree.Direction)
	assert.Equal(t, "50%", tree.Width.String())
	assert.Equal(t, "120", tree.Height.String())
	assert.Equal(t, box.OverflowWrap, tree.OverflowX)
	assert.Equal(t, box.OverflowScroll, tree.OverflowY)
	assert.Equal(t, box.JustifySpaceBetween, tree.JustifyContent)
	assert.Equal(t, 4.0, tree.ColumnGap)
	assert.Equal(t, 8.0, tree.RowGap)
	assert.Equal(t, geometry.EdgeInsetsAll(10), tree.Padding)
	assert.Equal(t, geometry.EdgeInsets{Left: 1, Top: 2}, tree.Margin)

	require.Len(t, tree.Children, 3)

	heading := tree.Children[0]
	assert.Equal(t, box.KindHeading, heading.Element.Kind)
	assert.Equal(t, "Title", heading.Element.Text)
	assert.Equal(t, 2, heading.Element.Level)

	raw := tree.Children[1]
	assert.Equal(t, box.KindRaw, raw.Element.Kind)
	assert.Equal(t, 12.0, raw.FontSize)

	abs := tree.Children[2]
	assert.Equal(t, box.PositionAbsolute, abs.Position)
	assert.Equal(t, "5", abs.Left.String())
	assert.Equal(t, "10%", abs.Top.String())
	assert.True(t, abs.Hidden)
}

func TestParse_TableTree(t *testing.T) {
	tree, err := Parse([]byte(`
kind: table
width: 200
children:
  - kind: thead
    children:
      - kind: tr
        children:
          - kind: th
            width: 60
  - kind: tbody
    children:
      - kind: tr
        children:
          - kind: td
`))
	require.NoError(t, err)

	assert.Equal(t, box.KindTable, tree.Element.Kind)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, box.KindTableHead, tree.Children[0].Element.Kind)
	assert.Equal(t, box.KindTableBody, tree.Children[1].Element.Kind)
	th := tree.Children[0].Children[0].Children[0]
	assert.Equal(t, box.KindTableHeaderCell, th.Element.Kind)
	assert.Equal(t, "60", th.Width.String())
}

func TestParse_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"kind", "kind: article"},
		{"direction", "direction: diagonal"},
		{"overflow", "overflow_x: hide"},
		{"position", "position: sticky"},
		{"justify", "justify: stretch"},
		{"dimension", "width: 12em"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParse_DefaultsAreZeroValues(t *testing.T) {
	tree, err := Parse([]byte("kind: div"))
	require.NoError(t, err)

	assert.Nil(t, tree.Width)
	assert.Nil(t, tree.Height)
	assert.Equal(t, box.DirectionRow, tree.Direction)
	assert.Equal(t, box.OverflowExpand, tree.OverflowX)
	assert.Equal(t, box.PositionStatic, tree.Position)
	assert.Equal(t, box.JustifyStart, tree.JustifyContent)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}
