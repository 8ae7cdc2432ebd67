package evaluator

type ObjectType string

const (
	NUMBER_OBJ = "NUMBER"
	VECTOR_OBJ = "VECTOR"
	ARRAY_OBJ  = "ARRAY"
)

// Value is a runtime value. The set of implementations is closed:
// *Number, *Vector and *Array. Values are never converted implicitly.
type Value interface {
	Type() ObjectType
	Inspect() string
}

// kindName is the noun used for a value kind in error messages.
func kindName(t ObjectType) string {
	switch t {
	case NUMBER_OBJ:
		return "number"
	case VECTOR_OBJ:
		return "vector"
	case ARRAY_OBJ:
		return "array"
	}
	return string(t)
}

// withArticle returns "a number", "an array", ...
func withArticle(t ObjectType) string {
	name := kindName(t)
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + name
	}
	return "a " + name
}
