// Package input keeps the held/released state of the keys the game reacts to.
package input

// Key — имя клавиши
type Key string

const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyFire  Key = "space"
)

// State — какие клавиши сейчас зажаты
type State struct {
	pressed map[Key]bool
}

func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Press отмечает клавишу нажатой. Возвращает true только для нового нажатия:
// повторный Press без Release (автоповтор) даёт false.
func (s *State) Press(k Key) bool {
	if s.pressed[k] {
		return false
	}
	s.pressed[k] = true
	return true
}

// Release отмечает клавишу отпущенной
func (s *State) Release(k Key) {
	delete(s.pressed, k)
}

// IsPressed сообщает, зажата ли клавиша
func (s *State) IsPressed(k Key) bool {
	return s.pressed[k]
}
