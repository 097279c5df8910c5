package pet

type Status string

const (
	StatusNormal   Status = "normal"
	StatusSleeping Status = "sleeping"
	StatusSick     Status = "sick"
	StatusUnhappy  Status = "unhappy"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNormal, StatusSleeping, StatusSick, StatusUnhappy:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type InteractionType string

const (
	TypeFeed     InteractionType = "feed"
	TypeClean    InteractionType = "clean"
	TypePlay     InteractionType = "play"
	TypeSleep    InteractionType = "sleep"
	TypeWake     InteractionType = "wake"
	TypePet      InteractionType = "pet"
	TypeExercise InteractionType = "exercise"
	TypeTreat    InteractionType = "treat"
	TypeMedicine InteractionType = "medicine"
)

func (t InteractionType) String() string {
	return string(t)
}

func (t InteractionType) IsValid() bool {
	_, ok := effects[t]
	return ok
}

func NewInteractionType(s string) (InteractionType, error) {
	t := InteractionType(s)
	if !t.IsValid() {
		return "", ErrInvalidInteraction
	}
	return t, nil
}

// Types lists every known interaction type in a stable order.
func Types() []InteractionType {
	return []InteractionType{
		TypeFeed, TypeClean, TypePlay, TypeSleep, TypeWake,
		TypePet, TypeExercise, TypeTreat, TypeMedicine,
	}
}
