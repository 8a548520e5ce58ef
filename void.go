package promise

// Void is the unit type: a placeholder payload for a Future or a Result
// that carries no value, only the fact that something happened (or
// failed). Used instead of a bare struct{} at call sites so the intent
// reads as "no value" rather than "empty struct".
type Void struct{}

// Unit is the single value of type Void.
var Unit = Void{}
