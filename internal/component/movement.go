// component/movement.go
package component

// Vector2 — пара чисел: позиция, скорость или смещение
type Vector2 struct {
	X, Y float64
}

// Add возвращает сумму векторов
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}
