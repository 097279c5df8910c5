package components

import (
	"petkeeper/internal/cache"
	repo_impl "petkeeper/internal/infra/repository"
	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPetRepository,
			fx.As(new(commands.PetRepository)),
			fx.As(new(queries.PetReadStore)),
			fx.As(new(cache.Store)),
		),
		fx.Annotate(
			repo_impl.NewInteractionLogRepository,
			fx.As(new(commands.InteractionLogRepository)),
			fx.As(new(queries.InteractionReadStore)),
		),
	),
)
