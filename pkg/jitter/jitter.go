// Package jitter добавляет случайный разброс к длительностям, чтобы записи кэша,
// созданные одновременно, не истекали в один и тот же момент.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент разброса TTL (20%)
const DefaultJitter = 0.2

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	f := globalRand.Float64()
	randMutex.Unlock()
	return apply(d, jitterFactor, f)
}

// DurationWithSeed возвращает продолжительность с джиттером, используя заданный генератор случайных чисел.
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *rand.Rand) time.Duration {
	return apply(d, jitterFactor, rng.Float64())
}

// TTL — разброс для TTL кэша с коэффициентом по умолчанию. Нулевой TTL (без истечения) не меняется.
func TTL(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	return Duration(d, DefaultJitter)
}

func apply(d time.Duration, jitterFactor, f float64) time.Duration {
	if jitterFactor <= 0 {
		return d
	}
	return d + time.Duration(f*jitterFactor*float64(d))
}
