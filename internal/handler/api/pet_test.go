//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/handler/api"
	resdto "petkeeper/internal/handler/dto/response"
	"petkeeper/internal/pkg/errs"
	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/readmodel"
	"petkeeper/tests/common/builder"
	"petkeeper/tests/common/httptest"
	commandsmock "petkeeper/tests/mock/commands"
	queriesmock "petkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PetHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPetCommands
	mockQueries  *queriesmock.MockPetQueries
	handler      *api.PetHandler
	ownerID      uuid.UUID
}

func (s *PetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPetCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPetQueries(s.mockCtrl)
	s.handler = api.NewPetHandler(s.mockCommands, s.mockQueries)
	s.ownerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("owner_id", s.ownerID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/pets", authMiddleware, s.handler.Create)
	s.router.GET("/pets", authMiddleware, s.handler.List)
	s.router.GET("/pets/:id", s.handler.Get)
	s.router.DELETE("/pets/:id", authMiddleware, s.handler.Delete)
	s.router.GET("/pets/:id/stats", s.handler.Stats)
	s.router.GET("/pets/:id/history", s.handler.History)
	s.router.POST("/pets/:id/interactions", authMiddleware, s.handler.Interact)
}

func (s *PetHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPetHandlerSuite(t *testing.T) {
	suite.Run(t, new(PetHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PetHandlerTestSuite) TestCreate() {
	url := "/pets"
	b := builder.NewPetBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for valid request", func() {
		created := b.BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, b.Name, b.Species).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.PetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(created.ID().String(), res.ID)
		s.Equal("normal", res.Status)
		s.Equal(100, res.Stats.Hunger)
	})

	s.Run("validation: missing fields are rejected", func() {
		for _, body := range []map[string]any{
			{"species": "cat"},
			{"name": "Mochi"},
			{},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("validation: domain rejection maps to 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pet.Pet{}, errs.Mark(pet.ErrNameTooLong, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("auth: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PetHandlerTestSuite) TestGet() {
	b := builder.NewPetBuilder()
	view := b.BuildReadModel()

	s.Run("success: returns the snapshot", func() {
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/"+b.ID.String(), nil, "")

		var res resdto.PetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(b.ID.String(), res.ID)
		s.Equal(b.Name, res.Name)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown pet maps to 404", func() {
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *PetHandlerTestSuite) TestStats() {
	b := builder.NewPetBuilder()
	view := b.BuildReadModel()

	s.Run("success: returns bare stats", func() {
		s.mockQueries.EXPECT().GetStats(gomock.Any(), b.ID).
			Return(&view.Stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/"+b.ID.String()+"/stats", nil, "")

		var res resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(100, res.Energy)
	})
}

// ================================================================================
// TestInteract
// ================================================================================

func (s *PetHandlerTestSuite) TestInteract() {
	b := builder.NewPetBuilder()
	url := "/pets/" + b.ID.String() + "/interactions"

	s.Run("success: returns the new snapshot and deltas", func() {
		result := &commands.ApplyResult{
			Snapshot: b.BuildDomain(),
			Deltas:   pet.Delta{Hunger: 30, Happiness: 5, Hygiene: -5},
		}
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeFeed).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "feed"}, "bearer-token")

		var res resdto.ApplyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(30, res.Deltas.Hunger)
		s.Equal(-5, res.Deltas.Hygiene)
		s.False(res.DurabilityDeferred)
	})

	s.Run("error: unknown interaction type maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "juggle"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown interaction type")
	})

	s.Run("error: cooldown maps to 429 with the remaining wait", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeFeed).
			Return(nil, &commands.CooldownError{Remaining: 90 * time.Second}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "feed"}, "bearer-token")

		s.Equal(http.StatusTooManyRequests, rec.Code)
		var body struct {
			Detail struct {
				RemainingSeconds int64 `json:"remaining_seconds"`
			} `json:"detail"`
		}
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(90), body.Detail.RemainingSeconds)
	})

	s.Run("error: illegal state maps to 409", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeSleep).
			Return(nil, errs.ErrIllegalInState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "sleep"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed in current status")
	})

	s.Run("error: daily limit maps to 429", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeTreat).
			Return(nil, errs.ErrDailyLimitHit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "treat"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Daily limit reached")
	})

	s.Run("error: foreign pet maps to 403", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeFeed).
			Return(nil, errs.ErrNotPetOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "feed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not the pet owner")
	})

	s.Run("error: contention maps to 503", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), b.ID, s.ownerID, pet.TypeFeed).
			Return(nil, errs.ErrTooMuchContention).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "feed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})

	s.Run("auth: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "feed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *PetHandlerTestSuite) TestHistory() {
	b := builder.NewPetBuilder()
	url := "/pets/" + b.ID.String() + "/history"

	s.Run("success: returns recent interactions", func() {
		items := []*readmodel.InteractionRM{
			{ID: 2, PetID: b.ID, ActorID: b.OwnerID, Type: "feed", AppliedAt: b.UpdatedAt, Status: "normal"},
			{ID: 1, PetID: b.ID, ActorID: b.OwnerID, Type: "play", AppliedAt: b.UpdatedAt.Add(-time.Hour), Status: "normal"},
		}
		s.mockQueries.EXPECT().History(gomock.Any(), b.ID, 20).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res struct {
			Interactions []resdto.InteractionResponse `json:"interactions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Interactions, 2)
	})

	s.Run("success: custom limit is passed through", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), b.ID, 5).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *PetHandlerTestSuite) TestList() {
	s.Run("success: returns owned pets", func() {
		view := builder.NewPetBuilder().BuildReadModel()
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return([]*readmodel.PetRM{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets", nil, "bearer-token")

		var res struct {
			Pets []resdto.PetResponse `json:"pets"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Pets, 1)
		s.Equal(view.ID.String(), res.Pets[0].ID)
	})

	s.Run("auth: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *PetHandlerTestSuite) TestDelete() {
	b := builder.NewPetBuilder()
	url := "/pets/" + b.ID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), b.ID, s.ownerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown pet maps to 404", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), b.ID, s.ownerID).
			Return(errs.ErrPetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})

	s.Run("auth: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
