package check

import (
	"reflect"
	"strings"
)

func isNull(_ Env, value any, _ string) bool {
	return isAbsent(value)
}

func isNotNull(env Env, value any, expression string) bool {
	return !isNull(env, value, expression)
}

// isEmpty treats blank strings and zero-length collections as empty.
func isEmpty(env Env, value any, expression string) bool {
	return !isNotEmpty(env, value, expression)
}

func isNotEmpty(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	if s, ok := asString(value); ok && strings.TrimSpace(s) == "" {
		return false
	}
	if n, ok := collectionSize(value); ok && n == 0 {
		return false
	}
	return true
}

// isTrue accepts a bool or a string spelling "true" in any case.
func isTrue(_ Env, value any, _ string) bool {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Bool {
		return rv.Bool()
	}
	if s, ok := asString(value); ok {
		return strings.EqualFold(s, "true")
	}
	return false
}

// isFalse is the complement of isTrue: an absent value passes.
func isFalse(env Env, value any, expression string) bool {
	return !isTrue(env, value, expression)
}
