package components

import (
	"context"
	"log/slog"

	"petkeeper/internal/cache"
	"petkeeper/internal/cooldown"
	"petkeeper/internal/domain/pet"
	"petkeeper/internal/pkg/clock"
	"petkeeper/internal/pkg/config"
	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		newRules,
		newGameConfig,
		fx.Annotate(
			cooldown.NewGate,
			fx.As(new(commands.CooldownGate)),
		),
		fx.Annotate(
			NewSnapshotCache,
			fx.As(new(commands.SnapshotCache)),
			fx.As(new(queries.SnapshotSource)),
		),
		commands.NewPetCommands,
		queries.NewPetQueries,
	),
)

func newGameConfig(cfg config.Config) config.GameConfig {
	return cfg.Game
}

func newRules(cfg config.Config) pet.Rules {
	g := cfg.Game
	return pet.Rules{
		HungerDecayPerHour:    g.HungerDecayPerHour,
		EnergyDecayPerHour:    g.EnergyDecayPerHour,
		EnergyRegenPerHour:    g.EnergyRegenPerHour,
		HygieneDecayPerHour:   g.HygieneDecayPerHour,
		HappinessDriftPerHour: g.HappinessDriftPerHour,
		HappinessMidpoint:     g.HappinessMidpoint,
		UnhappyThreshold:      g.UnhappyThreshold,
		LowStatThreshold:      g.LowStatThreshold,
		LowStatPenaltyPerHour: g.LowStatPenaltyPerHour,
		TreatDailyLimit:       g.TreatDailyLimit,
	}
}

func NewSnapshotCache(lc fx.Lifecycle, store cache.Store, clk clock.Clock, logger *slog.Logger, cfg config.GameConfig) *cache.Cache {
	c := cache.New(store, clk, logger, cfg)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return c.Stop(ctx)
		},
	})

	return c
}
