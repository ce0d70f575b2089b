package simulator

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"talentflow-backend/config"
	"talentflow-backend/lib/metrics"
)

// ErrSimulated возвращается вместо выполнения записи,
// мутация при этом не применяется
var ErrSimulated = errors.New("симулированная ошибка сервера")

// Provider - политика искусственной задержки и сбоев для операций записи.
// Исход решается после задержки и до мутации, поэтому несостоявшаяся
// запись никогда не применяется частично
type Provider interface {
	Simulate() error
}

var Instance Provider

func NewHandler() {
	cfg := config.Conf.Simulator
	if cfg.Enabled != nil && !*cfg.Enabled {
		Instance = NewStatic(nil)
		return
	}
	Instance = NewInstance(
		time.Duration(cfg.MinDelayMs)*time.Millisecond,
		time.Duration(cfg.MaxDelayMs)*time.Millisecond,
		cfg.ErrorRate,
	)
}

func NewInstance(minDelay, maxDelay time.Duration, errorRate float64) Provider {
	return &impl{
		minDelay:  minDelay,
		maxDelay:  maxDelay,
		errorRate: errorRate,
	}
}

type impl struct {
	minDelay  time.Duration
	maxDelay  time.Duration
	errorRate float64
}

func (i impl) Simulate() error {
	delay := i.minDelay
	if i.maxDelay > i.minDelay {
		delay += time.Duration(rand.Int63n(int64(i.maxDelay - i.minDelay)))
	}
	metrics.WriteDelay.Observe(delay.Seconds())
	time.Sleep(delay)
	if rand.Float64() < i.errorRate {
		metrics.InjectedFaults.Inc()
		return ErrSimulated
	}
	return nil
}

// NewStatic - детерминированная политика: без задержки, всегда один исход.
// err == nil отключает симуляцию совсем
func NewStatic(err error) Provider {
	return &static{err: err}
}

type static struct {
	err error
}

func (s static) Simulate() error {
	if s.err != nil {
		metrics.InjectedFaults.Inc()
	}
	return s.err
}
