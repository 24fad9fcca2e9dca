package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	"assignly-api/internal/infrastructure/mq"
)

// Descriptor tells the generic lifecycle how to handle one entity kind:
// how to read its id and uniqueness key, how to merge a patch into it,
// and which payload shape its mutation events carry.
type Descriptor[T any, P any] struct {
	Kind string

	ID  func(*T) uuid.UUID
	Key func(*T) string
	// PatchKey extracts the uniqueness key from a patch, nil when the
	// patch leaves it untouched.
	PatchKey func(P) *string
	Apply    func(*T, P)
	DupErr   error

	// EventPayload maps the entity to the shape published on the bus.
	// Keeps credentials out of broker traffic.
	EventPayload func(*T) any
}

type Lifecycle[T any, P any] struct {
	repo     entity.Repository[T]
	named    entity.NamedRepository[T]
	desc     Descriptor[T, P]
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewLifecycle[T any, P any](
	repo entity.Repository[T],
	desc Descriptor[T, P],
	rmq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) *Lifecycle[T, P] {
	l := &Lifecycle[T, P]{
		repo:     repo,
		desc:     desc,
		mq:       rmq,
		mCounter: mCounter,
	}
	if named, ok := repo.(entity.NamedRepository[T]); ok {
		l.named = named
	}

	return l
}

func (l *Lifecycle[T, P]) ListAll(ctx context.Context) ([]*T, error) {
	recs, err := l.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func (l *Lifecycle[T, P]) FindByName(ctx context.Context, name string) ([]*T, error) {
	if l.named == nil {
		return nil, entity.ErrNotFound
	}

	recs, err := l.named.FetchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, entity.ErrNotFound
	}

	return recs, nil
}

func (l *Lifecycle[T, P]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := l.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, entity.ErrNotFound
	}

	return rec, nil
}

func (l *Lifecycle[T, P]) Create(ctx context.Context, rec *T) (*T, error) {
	if l.named != nil && l.desc.Key != nil {
		if key := l.desc.Key(rec); key != "" {
			existing, err := l.named.FetchByKey(ctx, key)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, l.desc.DupErr
			}
		}
	}

	ret, err := l.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}

	l.publish(http.MethodPost, ret)
	l.count(l.desc.Kind + "_created_total")

	return ret, nil
}

func (l *Lifecycle[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	cur, err := l.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, entity.ErrNotFound
	}

	if l.named != nil && l.desc.PatchKey != nil {
		if key := l.desc.PatchKey(patch); key != nil && !strings.EqualFold(*key, l.desc.Key(cur)) {
			existing, err := l.named.FetchByKey(ctx, *key)
			if err != nil {
				return nil, err
			}
			// the record being updated never collides with itself
			if existing != nil && l.desc.ID(existing) != id {
				return nil, l.desc.DupErr
			}
		}
	}

	l.desc.Apply(cur, patch)

	ret, err := l.repo.Update(ctx, cur)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, entity.ErrNotFound
	}

	l.publish(http.MethodPut, ret)
	l.count(l.desc.Kind + "_updated_total")

	return ret, nil
}

func (l *Lifecycle[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	cur, err := l.repo.FetchByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return entity.ErrNotFound
	}

	if err = l.repo.Delete(ctx, id); err != nil {
		return err
	}

	l.publish(http.MethodDelete, cur)
	l.count(l.desc.Kind + "_deleted_total")

	return nil
}

func (l *Lifecycle[T, P]) ToggleActive(ctx context.Context, id uuid.UUID) (*T, error) {
	ret, err := l.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, entity.ErrNotFound
	}

	l.publish(http.MethodPatch, ret)
	l.count(l.desc.Kind + "_toggled_total")

	return ret, nil
}

func (l *Lifecycle[T, P]) ToggleDeleted(ctx context.Context, id uuid.UUID) (*T, error) {
	ret, err := l.repo.ToggleDeleted(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, entity.ErrNotFound
	}

	l.publish(http.MethodPatch, ret)
	l.count(l.desc.Kind + "_toggled_total")

	return ret, nil
}

func (l *Lifecycle[T, P]) publish(method string, rec *T) {
	if l.mq == nil || rec == nil {
		return
	}

	payload := any(rec)
	if l.desc.EventPayload != nil {
		payload = l.desc.EventPayload(rec)
	}

	l.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   method,
		Entity:   l.desc.Kind,
		EntityID: l.desc.ID(rec).String(),
		Payload:  payload,
	}
}

func (l *Lifecycle[T, P]) count(name string) {
	if l.mCounter == nil {
		return
	}
	l.mCounter.WithLabelValues(name).Inc()
}
