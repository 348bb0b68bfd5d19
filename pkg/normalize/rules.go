package normalize

import "github.com/google/uuid"

// rule resolves one canonical field of E from a record, substituting its fallback when
// the raw value is absent.
type rule[E any] interface {
	apply(record Record, entity *E)
}

type stringRule[E any] struct {
	key      string
	fallback string
	assign   func(*E, string)
}

func (r stringRule[E]) apply(record Record, entity *E) {
	value, found := record.String(r.key)
	if !found {
		value = r.fallback
	}

	r.assign(entity, value)
}

// nonEmptyStringRule also treats an empty string as absent.
type nonEmptyStringRule[E any] struct {
	key      string
	fallback func(*E) string
	assign   func(*E, string)
}

func (r nonEmptyStringRule[E]) apply(record Record, entity *E) {
	value, found := record.String(r.key)
	if !found || len(value) == 0 {
		value = r.fallback(entity)
	}

	r.assign(entity, value)
}

type optionalStringRule[E any] struct {
	key    string
	assign func(*E, *string)
}

func (r optionalStringRule[E]) apply(record Record, entity *E) {
	if value, found := record.String(r.key); found {
		r.assign(entity, &value)
	}
}

type intRule[E any] struct {
	key      string
	fallback int
	assign   func(*E, int)
}

func (r intRule[E]) apply(record Record, entity *E) {
	value, found := record.Int(r.key)
	if !found {
		value = r.fallback
	}

	r.assign(entity, value)
}

type optionalIntRule[E any] struct {
	key    string
	assign func(*E, *int)
}

func (r optionalIntRule[E]) apply(record Record, entity *E) {
	if value, found := record.Int(r.key); found {
		r.assign(entity, &value)
	}
}

type floatRule[E any] struct {
	key      string
	fallback float64
	assign   func(*E, float64)
}

func (r floatRule[E]) apply(record Record, entity *E) {
	value, found := record.Float(r.key)
	if !found {
		value = r.fallback
	}

	r.assign(entity, value)
}

type stringsRule[E any] struct {
	key    string
	assign func(*E, []string)
}

func (r stringsRule[E]) apply(record Record, entity *E) {
	value, found := record.Strings(r.key)
	if !found {
		value = []string{}
	}

	r.assign(entity, value)
}

type uuidRule[E any] struct {
	key      string
	fallback uuid.UUID
	assign   func(*E, uuid.UUID)
}

func (r uuidRule[E]) apply(record Record, entity *E) {
	value, found := record.UUID(r.key)
	if !found {
		value = r.fallback
	}

	r.assign(entity, value)
}

// enumRule looks the raw string up with parse; unrecognised members count as absent.
type enumRule[E any, V any] struct {
	key      string
	parse    func(string) (V, bool)
	fallback V
	assign   func(*E, V)
}

func (r enumRule[E, V]) apply(record Record, entity *E) {
	value := r.fallback

	if raw, found := record.String(r.key); found {
		if parsed, known := r.parse(raw); known {
			value = parsed
		}
	}

	r.assign(entity, value)
}

func applyRules[E any](record Record, rules []rule[E]) E {
	var entity E

	for _, fieldRule := range rules {
		fieldRule.apply(record, &entity)
	}

	return entity
}
