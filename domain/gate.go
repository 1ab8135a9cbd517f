package domain

// GateRequest asks whether at least one of People is present and available in Room.
type GateRequest struct {
	People   []string `validate:"required,min=1,dive,required"`
	Room     RoomID   `validate:"required"`
	TaskName string
}

// SinglePerson normalises a lone identifier into a people list.
func SinglePerson(person string) []string {
	return []string{person}
}
