package bulkops

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	batches [][]Statement
	err     error
}

func (r *recordingRunner) RunInTx(_ context.Context, batches [][]Statement) error {
	r.batches = batches
	return r.err
}

func testLogger() logger.Logger {
	return logger.New(logger.Opts{})
}

func statements(n int) []Statement {
	out := make([]Statement, n)
	for i := range out {
		out[i] = Statement{SQL: fmt.Sprintf("INSERT %d", i)}
	}
	return out
}

func TestGatewayBatching(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	gw := New(runner, testLogger())

	err := gw.Apply(context.Background(), "media", statements(2500), nil)
	require.NoError(t, err)

	require.Len(t, runner.batches, 3)
	assert.Len(t, runner.batches[0], 1000)
	assert.Len(t, runner.batches[1], 1000)
	assert.Len(t, runner.batches[2], 500)
}

func TestGatewayExactMultiple(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	gw := New(runner, testLogger())

	err := gw.Apply(context.Background(), "media", statements(2000), nil)
	require.NoError(t, err)

	require.Len(t, runner.batches, 2)
	assert.Len(t, runner.batches[0], 1000)
	assert.Len(t, runner.batches[1], 1000)
}

func TestGatewayInsertAndUpdateBatchesOrdered(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	gw := New(runner, testLogger())

	inserts := []Statement{{SQL: "INSERT"}}
	updates := []Statement{{SQL: "UPDATE"}}

	err := gw.Apply(context.Background(), "pages", inserts, updates)
	require.NoError(t, err)

	require.Len(t, runner.batches, 2)
	assert.Equal(t, "INSERT", runner.batches[0][0].SQL)
	assert.Equal(t, "UPDATE", runner.batches[1][0].SQL)
}

func TestGatewayEmptyIsNoop(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{err: errors.New("should not run")}
	gw := New(runner, testLogger())

	err := gw.Apply(context.Background(), "stories", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, runner.batches)
}

func TestGatewayWrapsRunnerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("deadlock")
	runner := &recordingRunner{err: boom}
	gw := New(runner, testLogger())

	err := gw.Apply(context.Background(), "comments", statements(1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "comments")
}
