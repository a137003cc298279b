package domain

// BeliefStore holds beliefs keyed by caller-chosen identifiers. Put with an
// existing key wholly replaces the entry (no merge) and keeps its original
// position in the iteration order.
type BeliefStore interface {
	Put(key string, b Belief)
	Get(key string) (Belief, bool)
	List() []KeyedBelief
}

// TaskStore holds tasks keyed by their id with the same replace semantics.
type TaskStore interface {
	Put(t Task)
	Get(id string) (Task, bool)
	List() []Task
}
