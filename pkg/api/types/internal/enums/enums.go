// Package enums converts between wire-side *string enum fields and
// their typed domain counterparts. Enum membership is not checked
// here; that is the domain specs' job.
package enums

func StrOf[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func Of[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
