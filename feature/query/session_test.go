package query_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/feature/query"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedNow() time.Time { return now }

func TestSession_Handle(t *testing.T) {
	inv := furniture(t)

	tests := []struct {
		name    string
		line    string
		want    query.Outcome
		expects []string
		absent  []string
	}{
		{
			name:    "Found With Alternative",
			line:    "Acme chair",
			want:    query.OutcomeFound,
			expects: []string{"Your item is: 100, ACME Corp, armchair, $150.0", "You may also consider similar item: 200, Zenith, chair, $90.0"},
		},
		{
			name:    "Found Without Alternative",
			line:    "zenith chairs",
			want:    query.OutcomeFound,
			expects: []string{"Your item is: 201, Zenith, chairs, $400.0"},
			absent:  []string{"You may also consider"},
		},
		{
			name:    "No Match",
			line:    "Initech stapler",
			want:    query.OutcomeNoMatch,
			expects: []string{query.MsgNoMatch},
		},
		{
			name:    "One Token",
			line:    "Acme",
			want:    query.OutcomeInvalid,
			expects: []string{query.MsgInvalid},
		},
		{
			name:    "Three Tokens",
			line:    "Acme office chair",
			want:    query.OutcomeInvalid,
			expects: []string{query.MsgInvalid},
		},
		{
			name: "Quit",
			line: " Q ",
			want: query.OutcomeQuit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := query.NewSession(inv, strings.NewReader(""), &out, zap.NewNop(), nil, fixedNow)

			assert.Equal(t, tt.want, s.Handle(tt.line))
			for _, e := range tt.expects {
				assert.Contains(t, out.String(), e)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, out.String(), a)
			}
		})
	}
}

func TestSession_Run(t *testing.T) {
	inv := furniture(t)
	m := metrics.New()
	input := "Acme chair\nbad\nInitech stapler\nq\nAcme desk\n"

	var out bytes.Buffer
	s := query.NewSession(inv, strings.NewReader(input), &out, nil, m, fixedNow)
	require.NoError(t, s.Run(context.Background()))

	body := out.String()
	assert.Equal(t, 4, strings.Count(body, query.Prompt))
	assert.Contains(t, body, "Your item is: 100")
	assert.Contains(t, body, query.MsgInvalid)
	assert.Contains(t, body, query.MsgNoMatch)
	// The query after the quit token is never evaluated.
	assert.NotContains(t, body, "Your item is: 300")

	n, err := testutil.GatherAndCount(m.Gatherer(), "inventory_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSession_RunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := query.NewSession(furniture(t), strings.NewReader("Acme desk"), &out, nil, nil, fixedNow)

	assert.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Your item is: 300, Acme, desk, $700.0")
}

func TestSession_ErrorKeepsLoopAlive(t *testing.T) {
	inv := build(t,
		[][]string{{"1", "Acme", "lamp"}, {"2", "Acme", "desk"}},
		[][]string{{"2", "10"}},
		[][]string{{"1", "1/1/2030"}, {"2", "1/1/2030"}},
	)

	var out bytes.Buffer
	s := query.NewSession(inv, strings.NewReader("acme lamp\nacme desk\nq\n"), &out, nil, nil, fixedNow)
	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Query failed")
	assert.Contains(t, out.String(), "Your item is: 2, Acme, desk, $10.0")
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := query.NewSession(furniture(t), strings.NewReader("Acme chair\n"), &bytes.Buffer{}, nil, nil, fixedNow)
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}
