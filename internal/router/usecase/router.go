package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"realtime-client/internal/channel"
	"realtime-client/internal/router"
	"realtime-client/pkg/log"
)

func (uc *implUseCase) Handle(scope channel.Kind, kind router.Kind, h router.Handler) {
	uc.handlers[route{scope: scope, kind: kind}] = h
}

func (uc *implUseCase) Decode(frame []byte) (router.InboundMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(frame, &envelope); err != nil {
		return router.InboundMessage{}, fmt.Errorf("%w: %v", router.ErrMalformedFrame, err)
	}
	if envelope == nil {
		return router.InboundMessage{}, fmt.Errorf("%w: not an object", router.ErrMalformedFrame)
	}

	raw, ok := envelope["type"]
	if !ok {
		return router.InboundMessage{}, fmt.Errorf("%w: missing type", router.ErrMalformedFrame)
	}
	var kind string
	if err := json.Unmarshal(raw, &kind); err != nil || kind == "" {
		return router.InboundMessage{}, fmt.Errorf("%w: type must be a non-empty string", router.ErrMalformedFrame)
	}

	return router.InboundMessage{
		Kind:    router.Kind(kind),
		Payload: append(json.RawMessage(nil), frame...),
	}, nil
}

func (uc *implUseCase) Route(ctx context.Context, key channel.Key, msg router.InboundMessage) bool {
	h, ok := uc.handlers[route{scope: key.Kind, kind: msg.Kind}]
	if !ok {
		uc.unrouted.Add(1)
		uc.l.Debugf(ctx, "router: no handler for %q on %s", msg.Kind, key)
		return false
	}
	uc.routed.Add(1)
	h(ctx, key, msg)
	return true
}

func (uc *implUseCase) Dispatch(key channel.Key, frame []byte) {
	ctx := log.WithContext(context.Background(), uc.l.With("channel", key.String()))

	msg, err := uc.Decode(frame)
	if err != nil {
		uc.dropped.Add(1)
		uc.l.Warnf(ctx, "router: dropping frame on %s: %v", key, err)
		return
	}
	uc.decoded.Add(1)
	uc.Route(ctx, key, msg)
}

func (uc *implUseCase) Stats() router.Stats {
	return router.Stats{
		Decoded:  uc.decoded.Load(),
		Dropped:  uc.dropped.Load(),
		Routed:   uc.routed.Load(),
		Unrouted: uc.unrouted.Load(),
	}
}
