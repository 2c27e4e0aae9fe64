// Package event publishes issuance and redemption events over NATS. When no
// NATS URL is configured the publisher is a no-op, so the service runs
// unchanged without a broker.
package event

import (
	"context"
	"encoding/json"
	"log/slog"

	"veritag/internal/pkg/config"
	"veritag/internal/pkg/errs"
	"veritag/internal/usecase/commands"

	"github.com/nats-io/nats.go"
)

const (
	subjectBatchIssued  = "veritag.batch.issued"
	subjectCodeRedeemed = "veritag.code.redeemed"
)

type Publisher interface {
	commands.EventPublisher
	Close()
}

type noop struct{}

func (noop) PublishBatchIssued(context.Context, commands.BatchIssuedEvent) error   { return nil }
func (noop) PublishCodeRedeemed(context.Context, commands.CodeRedeemedEvent) error { return nil }
func (noop) Close()                                                                {}

type natsPub struct {
	nc *nats.Conn
}

// NewPublisher connects to NATS when configured. Connection failure degrades
// to the no-op publisher rather than blocking startup; issuance and
// redemption must not depend on the broker being up.
func NewPublisher(cfg config.EventsConfig) Publisher {
	if cfg.NATSURL == "" {
		return noop{}
	}
	nc, err := nats.Connect(cfg.NATSURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		slog.Warn("nats connect failed, events disabled", "error", err)
		return noop{}
	}
	return &natsPub{nc: nc}
}

func (p *natsPub) PublishBatchIssued(_ context.Context, ev commands.BatchIssuedEvent) error {
	return p.publish(subjectBatchIssued, ev)
}

func (p *natsPub) PublishCodeRedeemed(_ context.Context, ev commands.CodeRedeemedEvent) error {
	return p.publish(subjectCodeRedeemed, ev)
}

func (p *natsPub) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

func (p *natsPub) Close() {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}
