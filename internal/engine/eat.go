package engine

// Eater carries out the "eat" command. The interpreter reports whatever it
// returns.
type Eater interface {
	Eat(what string) string
}

// EaterFunc adapts a function to the Eater interface.
type EaterFunc func(what string) string

func (f EaterFunc) Eat(what string) string {
	return f(what)
}

type defaultEater struct{}

func (defaultEater) Eat(string) string {
	return "You have eaten now and you are not hungry any more."
}
