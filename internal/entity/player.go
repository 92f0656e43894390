package entity

type Player struct {
	Name string `json:"name"`
	Mark Cell   `json:"mark"`
}

func NewPlayer(name string, mark Cell) Player {
	return Player{
		Name: name,
		Mark: mark,
	}
}
