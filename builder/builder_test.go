package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnode/builder"
	"github.com/katalvlaran/gnode/node"
)

// names returns the child names of n.
func names(n node.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Name())
	}

	return out
}

func TestBuild_RootOnly(t *testing.T) {
	root, err := builder.New("a").Build()
	require.NoError(t, err)
	assert.Equal(t, "a", root.Name())
	assert.Empty(t, root.Children())
}

func TestBuild_SampleHierarchy(t *testing.T) {
	root, err := builder.New("a").
		WithChild("b").
		WithChild("e").EndChild().
		WithChild("f").EndChild().
		EndChild().
		WithChild("c").
		WithChild("g").EndChild().
		WithChild("h").EndChild().
		WithChild("i").EndChild().
		EndChild().
		WithChild("d").
		WithChild("j").EndChild().
		EndChild().
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "d"}, names(root))
	kids := root.Children()
	assert.Equal(t, []string{"e", "f"}, names(kids[0]))
	assert.Equal(t, []string{"g", "h", "i"}, names(kids[1]))
	assert.Equal(t, []string{"j"}, names(kids[2]))
	assert.Empty(t, kids[2].Children()[0].Children())
}

func TestBuild_FromCurrentDeclaration(t *testing.T) {
	b := builder.New("a").WithChild("b").WithChild("e").EndChild()
	assert.Equal(t, 1, b.Depth())

	sub, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "b", sub.Name())
	assert.Equal(t, []string{"e"}, names(sub))
}

func TestBuild_DistinctInstancesPerDeclaration(t *testing.T) {
	root := builder.New("r").
		WithChild("x").EndChild().
		WithChild("x").EndChild().
		MustBuild()

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.NotSame(t, kids[0], kids[1])
	assert.True(t, node.Equal(kids[0], kids[1]))
}

func TestBuild_Twice(t *testing.T) {
	b := builder.New("a").WithChild("b").EndChild()
	first := b.MustBuild()
	second := b.MustBuild()

	assert.NotSame(t, first, second)
	assert.Equal(t, names(first), names(second))
}

func TestDepth(t *testing.T) {
	b := builder.New("a")
	assert.Equal(t, 0, b.Depth())
	b.WithChild("b").WithChild("c")
	assert.Equal(t, 2, b.Depth())
	b.EndChild().EndChild()
	assert.Equal(t, 0, b.Depth())
}

func TestEndChild_AtRootIsUnbalanced(t *testing.T) {
	b := builder.New("a").EndChild()
	assert.Equal(t, 0, b.Depth(), "stack is left untouched")

	root, err := b.Build()
	assert.Nil(t, root)
	assert.ErrorIs(t, err, builder.ErrUnbalanced)

	assert.Panics(t, func() { b.MustBuild() })
}
