package utils

import (
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

// randomdata keeps one process wide source, replaced without locking.
var seedOnce sync.Once

// RandomNameGenerator hands out unique names. Taken or empty names are
// replaced by made up ones. A generator is not safe for concurrent use,
// separate generators are.
type RandomNameGenerator map[string]struct{}

func (rng *RandomNameGenerator) init() {
	seedOnce.Do(func() {
		randomdata.CustomRand(rand.New(rand.NewSource(0)))
	})
	if *rng == nil {
		*rng = make(map[string]struct{})
	}
}

func (rng *RandomNameGenerator) RandomName() string {
	rng.init()
	for {
		name := randomdata.SillyName()
		// avoid duplicate names
		if _, exists := (*rng)[name]; !exists {
			(*rng)[name] = struct{}{}
			return name
		}
	}
}

// UniqueName returns preferred when it is free.
func (rng *RandomNameGenerator) UniqueName(preferred string) string {
	rng.init()
	if preferred == "" {
		return rng.RandomName()
	}
	if _, exists := (*rng)[preferred]; !exists {
		(*rng)[preferred] = struct{}{}
		return preferred
	}
	for {
		name := preferred + "_" + rng.RandomName()
		if _, exists := (*rng)[name]; !exists {
			(*rng)[name] = struct{}{}
			return name
		}
	}
}
