package component

import "github.com/milk9111/topdown/motion"

// Motion attaches a locomotion controller state to an entity. Config is
// shared so live tuning reloads reach every controlled body.
type Motion struct {
	State  motion.State
	Config *motion.Config
}

var MotionComponent = NewComponent[Motion]()
