package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"petkeeper/internal/domain/pet"
	reqdto "petkeeper/internal/handler/dto/request"
	resdto "petkeeper/internal/handler/dto/response"
	"petkeeper/internal/handler/httperr"
	"petkeeper/internal/handler/middleware"
	"petkeeper/internal/pkg/errs"
	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/queries"
	"petkeeper/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	cmds commands.PetCommands
	q    queries.PetQueries
}

func NewPetHandler(cmds commands.PetCommands, q queries.PetQueries) *PetHandler {
	return &PetHandler{cmds: cmds, q: q}
}

// @Summary Create pet
// @Description Create a new pet owned by the authenticated user
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePetRequest true "Create pet request"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.Create(c.Request.Context(), ownerID, req.Name, req.Species)
	if err != nil {
		abortWithPetError(c, err, "Create pet failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPetRM(readmodel.PetRMFrom(p)))
}

// @Summary Get pet snapshot
// @Description Get the current pet snapshot with decay applied at read time
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		abortWithPetError(c, err, "Failed to load pet")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetRM(view))
}

// @Summary Get pet stats
// @Description Get the pet's current stats with decay applied at read time
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.StatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id}/stats [get]
func (h *PetHandler) Stats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	stats, err := h.q.GetStats(c.Request.Context(), id)
	if err != nil {
		abortWithPetError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsRM(stats))
}

// @Summary Apply interaction
// @Description Apply an interaction (feed, clean, play, ...) to an owned pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.InteractRequest true "Interaction request"
// @Success 200 {object} resdto.ApplyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /pets/{id}/interactions [post]
func (h *PetHandler) Interact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.InteractRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	itype, err := pet.NewInteractionType(req.Type)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown interaction type", nil)
		return
	}

	result, err := h.cmds.Apply(c.Request.Context(), id, actorID, itype)
	if err != nil {
		abortWithPetError(c, err, "Interaction failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyResult(result))
}

// @Summary Pet interaction history
// @Description List the most recent interactions applied to a pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.InteractionResponse
// @Failure 400 {object} map[string]string
// @Router /pets/{id}/history [get]
func (h *PetHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	limit := queries.DefaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	items, err := h.q.History(c.Request.Context(), id, limit)
	if err != nil {
		abortWithPetError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": resdto.FromInteractionList(items)})
}

// @Summary List own pets
// @Description List pets owned by the authenticated user
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PetResponse
// @Failure 401 {object} map[string]string
// @Router /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortWithPetError(c, err, "Failed to list pets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": resdto.FromPetList(views)})
}

// @Summary Delete pet
// @Description Delete an owned pet
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), id, actorID); err != nil {
		abortWithPetError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithPetError maps engine errors to HTTP statuses, carrying structured
// detail (such as the remaining cooldown) so clients can render a specific
// message.
func abortWithPetError(c *gin.Context, err error, msg string) {
	var cooldownErr *commands.CooldownError
	switch {
	case errors.As(err, &cooldownErr):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Interaction on cooldown", gin.H{
			"remaining_seconds": int64(cooldownErr.Remaining.Round(time.Second) / time.Second),
		})
	case errors.Is(err, errs.ErrPetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
	case errors.Is(err, errs.ErrNotPetOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not the pet owner", nil)
	case errors.Is(err, errs.ErrIllegalInState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Interaction not allowed in current status", nil)
	case errors.Is(err, errs.ErrDailyLimitHit):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Daily limit reached", nil)
	case errors.Is(err, errs.ErrTooMuchContention):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Pet is busy, try again", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
