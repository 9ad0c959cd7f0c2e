package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/txnledger/internal/errs"
)

func TestReader_SkipsHeaderAndKeepsOrder(t *testing.T) {
	in := "type, client, tx, amount\n" +
		"deposit, 1, 1, 1.0\n" +
		"dispute, 1, 1\n" +
		"\n" +
		"withdrawal,2,2,3\n"
	r := NewReader(strings.NewReader(in))

	row, line, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"deposit", "1", "1", "1.0"}, row)
	assert.Equal(t, 2, line)

	row, line, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"dispute", "1", "1"}, row)
	assert.Equal(t, 3, line)

	row, line, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"withdrawal", "2", "2", "3"}, row)
	assert.Equal(t, 5, line)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_MalformedLineIsSkippable(t *testing.T) {
	in := "type,client,tx,amount\n" +
		"deposit,1,\"1,1.0\n"
	r := NewReader(strings.NewReader(in))

	_, _, err := r.Next()
	assert.ErrorIs(t, err, errs.ErrUnparseable)
}

func TestReader_HeaderOnly(t *testing.T) {
	r := NewReader(strings.NewReader("type,client,tx,amount\n"))
	_, _, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
