package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionCommand asserts the sections that render whether or not a
// Node.js binary is installed on the test machine.
func TestVersionCommand(t *testing.T) {
	g, _ := testGlobals()

	out, err := execute(t, NewVersionCmd(g))
	require.NoError(t, err)
	assert.Contains(t, out, "solwire:")
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Node.js:")
}
