package response

import (
	"time"

	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/readmodel"
)

type StatsResponse struct {
	Hunger    int `json:"hunger"`
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
	Hygiene   int `json:"hygiene"`
}

type PetResponse struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Name      string        `json:"name"`
	Species   string        `json:"species"`
	Stats     StatsResponse `json:"stats"`
	Status    string        `json:"status"`
	Version   int64         `json:"version"`
	UpdatedAt time.Time     `json:"updated_at"`
	CreatedAt time.Time     `json:"created_at"`
}

type InteractionResponse struct {
	ID        int64         `json:"id"`
	PetID     string        `json:"pet_id"`
	ActorID   string        `json:"actor_id"`
	Type      string        `json:"type"`
	AppliedAt time.Time     `json:"applied_at"`
	Deltas    StatsResponse `json:"deltas"`
	Status    string        `json:"status"`
}

// ApplyResponse reports the outcome of an interaction. DurabilityDeferred
// flags that the change is committed in memory but the durable write is
// still being retried.
type ApplyResponse struct {
	Pet                PetResponse   `json:"pet"`
	Deltas             StatsResponse `json:"deltas"`
	DurabilityDeferred bool          `json:"durability_deferred,omitempty"`
}

func fromStatsRM(s readmodel.StatsRM) StatsResponse {
	return StatsResponse{
		Hunger:    s.Hunger,
		Happiness: s.Happiness,
		Energy:    s.Energy,
		Hygiene:   s.Hygiene,
	}
}

func FromPetRM(rm *readmodel.PetRM) PetResponse {
	return PetResponse{
		ID:        rm.ID.String(),
		OwnerID:   rm.OwnerID.String(),
		Name:      rm.Name,
		Species:   rm.Species,
		Stats:     fromStatsRM(rm.Stats),
		Status:    rm.Status,
		Version:   rm.Version,
		UpdatedAt: rm.UpdatedAt,
		CreatedAt: rm.CreatedAt,
	}
}

func FromStatsRM(rm *readmodel.StatsRM) StatsResponse {
	return fromStatsRM(*rm)
}

func FromPetList(rms []*readmodel.PetRM) []PetResponse {
	out := make([]PetResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromPetRM(rm))
	}
	return out
}

func FromInteractionList(rms []*readmodel.InteractionRM) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, InteractionResponse{
			ID:        rm.ID,
			PetID:     rm.PetID.String(),
			ActorID:   rm.ActorID.String(),
			Type:      rm.Type,
			AppliedAt: rm.AppliedAt,
			Deltas:    fromStatsRM(rm.Deltas),
			Status:    rm.Status,
		})
	}
	return out
}

func FromApplyResult(res *commands.ApplyResult) ApplyResponse {
	rm := readmodel.PetRMFrom(res.Snapshot)
	return ApplyResponse{
		Pet: FromPetRM(rm),
		Deltas: StatsResponse{
			Hunger:    res.Deltas.Hunger,
			Happiness: res.Deltas.Happiness,
			Energy:    res.Deltas.Energy,
			Hygiene:   res.Deltas.Hygiene,
		},
		DurabilityDeferred: res.Deferred,
	}
}
