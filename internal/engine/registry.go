package engine

import (
	"fmt"
	"sort"
	"sync"
)

// GameType is the closed set of mechanics modules.
type GameType int

const (
	TypeRunner GameType = iota
	TypePlatformer
	TypePuzzle
	TypeWord
	TypeCard
)

// String returns the game type's catalog id.
func (t GameType) String() string {
	switch t {
	case TypeRunner:
		return "runner"
	case TypePlatformer:
		return "platformer"
	case TypePuzzle:
		return "puzzle"
	case TypeWord:
		return "word"
	case TypeCard:
		return "card"
	default:
		return fmt.Sprintf("gametype(%d)", int(t))
	}
}

// ParseGameType resolves a catalog id to a GameType.
func ParseGameType(s string) (GameType, error) {
	switch s {
	case "runner":
		return TypeRunner, nil
	case "platformer":
		return TypePlatformer, nil
	case "puzzle":
		return TypePuzzle, nil
	case "word":
		return TypeWord, nil
	case "card", "cards":
		return TypeCard, nil
	default:
		return 0, fmt.Errorf("engine: unknown game type %q", s)
	}
}

// Factory constructs a fresh engine from a config.
type Factory func(cfg Config) Engine

var (
	factories = make(map[GameType]Factory)
	mu        sync.RWMutex
)

// Register binds a constructor to a game type. Engines register
// themselves in init(); a duplicate registration is a programming error.
func Register(t GameType, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[t]; exists {
		panic(fmt.Sprintf("engine: game type %q already registered", t))
	}
	factories[t] = f
}

// Registered returns the registered game types in declaration order.
func Registered() []GameType {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]GameType, 0, len(factories))
	for t := range factories {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Exists reports whether a constructor is registered for the type.
func Exists(t GameType) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[t]
	return ok
}

// New instantiates the engine for a game type. An unknown or
// unregistered type yields the fallback engine, which renders a visible
// "unknown game type" notice instead of failing; selecting a bad type
// is a recoverable, user-visible condition, not a crash.
func New(t GameType, cfg Config) Engine {
	mu.RLock()
	f, ok := factories[t]
	mu.RUnlock()
	if !ok {
		return newFallback(t, cfg)
	}
	return f(cfg)
}
