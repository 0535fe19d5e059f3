package connectivity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Probe reports whether the backing store is reachable.
type Probe func(ctx context.Context) error

// Monitor keeps a standing online/offline flag for the persistence backend.
// It starts online and flips after each probe.
type Monitor struct {
	probe    Probe
	interval time.Duration
	timeout  time.Duration
	online   atomic.Bool
	log      *zap.Logger
}

func NewMonitor(probe Probe, interval time.Duration, log *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	m := &Monitor{
		probe:    probe,
		interval: interval,
		timeout:  interval / 2,
		log:      log.Named("connectivity"),
	}
	m.online.Store(true)
	return m
}

func (m *Monitor) Online() bool { return m.online.Load() }

// Check runs the probe once and records the result.
func (m *Monitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.probe(ctx)
	online := err == nil
	if prev := m.online.Swap(online); prev != online {
		if online {
			m.log.Info("backend reachable again")
		} else {
			m.log.Warn("backend unreachable, rejecting writes", zap.Error(err))
		}
	}
	return online
}

// Run probes until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.Check(ctx)
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Check(ctx)
		}
	}
}

type DescribeTableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoProbe checks that the table answers DescribeTable.
func DynamoProbe(ddb DescribeTableAPI, table string) Probe {
	return func(ctx context.Context) error {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		return err
	}
}
