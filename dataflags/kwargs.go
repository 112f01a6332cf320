package dataflags

import "fmt"

// Kwarg readers for check adapters. Configuration kwargs arrive as
// map[string]any from the YAML decoder; absent keys fall back to the
// caller's default.

func kwString(kwargs map[string]any, key, def string) (string, error) {
	v, ok := kwargs[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("kwarg %q: want string, got %v (%T)", key, v, v)
	}
	return s, nil
}

func kwInt(kwargs map[string]any, key string, def int) (int, error) {
	v, ok := kwargs[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("kwarg %q: want integer, got %v (%T)", key, v, v)
}

func kwFloat(kwargs map[string]any, key string, def float64) (float64, error) {
	v, ok := kwargs[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("kwarg %q: want number, got %v (%T)", key, v, v)
}
