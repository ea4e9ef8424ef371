package graphql

import (
	"fmt"
	"strconv"

	"github.com/graph-gophers/graphql-go"
)

// Long is a 64-bit integer scalar serialized as a JSON number.
type Long int64

func (Long) ImplementsGraphQLType(name string) bool {
	return name == "Long"
}

func (l *Long) UnmarshalGraphQL(input any) error {
	switch v := input.(type) {
	case int32:
		*l = Long(v)
	case int64:
		*l = Long(v)
	case float64:
		*l = Long(int64(v))
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*l = Long(n)
	default:
		return fmt.Errorf("wrong type for Long: %T", input)
	}
	return nil
}

func (l Long) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(l), 10), nil
}

func toID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

func toIDPtr(id *int64) *graphql.ID {
	if id == nil {
		return nil
	}
	v := toID(*id)
	return &v
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", string(id))
	}
	return n, nil
}

func parseIDPtr(id *graphql.ID) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	n, err := parseID(*id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
