package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/wxhist"
	"github.com/fwojciec/wxhist/mock"
	wxslog "github.com/fwojciec/wxhist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTableParser_ParseTable(t *testing.T) {
	t.Parallel()

	t.Run("logs table shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		want := &wxhist.Table{
			Header: []string{"Time (EET)", "Temp.", "Pressure"},
			Rows:   [][]*wxhist.Node{{}, {}},
		}
		inner := &mock.TableParser{
			ParseTableFn: func(html string) (*wxhist.Table, error) {
				return want, nil
			},
		}

		table, err := wxslog.NewLoggingTableParser(inner, debugLogger(&buf)).ParseTable("<html></html>")

		require.NoError(t, err)
		assert.Same(t, want, table)
		output := buf.String()
		assert.Contains(t, output, "parse table")
		assert.Contains(t, output, "columns=3")
		assert.Contains(t, output, "rows=2")
	})

	t.Run("logs error code on unusable page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TableParser{
			ParseTableFn: func(html string) (*wxhist.Table, error) {
				return nil, wxhist.Errorf(wxhist.EUNUSABLE, "no observation table")
			},
		}

		_, err := wxslog.NewLoggingTableParser(inner, debugLogger(&buf)).ParseTable("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=unusable")
	})
}
