package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMonitor_Check(t *testing.T) {
	var fail atomic.Bool
	m := NewMonitor(func(context.Context) error {
		if fail.Load() {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}, time.Second, zap.NewNop())

	assert.True(t, m.Online())

	fail.Store(true)
	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.Online())

	fail.Store(false)
	assert.True(t, m.Check(context.Background()))
	assert.True(t, m.Online())
}

func TestMonitor_RunStopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	m := NewMonitor(func(context.Context) error {
		calls.Add(1)
		return errors.New("down")
	}, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	assert.False(t, m.Online())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type describeFunc func(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)

func (f describeFunc) DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return f(ctx, in, optFns...)
}

func TestDynamoProbe(t *testing.T) {
	var table string
	probe := DynamoProbe(describeFunc(func(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		table = *in.TableName
		return &dynamodb.DescribeTableOutput{}, nil
	}), "quotes")

	require.NoError(t, probe(context.Background()))
	assert.Equal(t, "quotes", table)
}
