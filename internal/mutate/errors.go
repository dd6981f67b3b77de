package mutate

import "fmt"

// ValidationError rejects a create/update intent at the point it is issued.
// It is the only error class a user ever sees from this package's happy
// paths; everything else is a caller bug or an unknown id.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
