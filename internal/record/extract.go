package record

// Ordered key-fallback accessors. Candidate keys are the compatibility
// surface against the provider's historical payload shapes: full field
// names, 1-3 letter abbreviations and legacy label variants. A present but
// incoercible key does not stop the chain; later API revisions reuse key
// names for incompatible types, so only a successful coercion wins.

func (r Record) IntAny(keys ...string) (int, bool) {
	for _, key := range keys {
		if v, ok := r.Int(key); ok {
			return v, true
		}
	}
	return 0, false
}

func (r Record) Int64Any(keys ...string) (int64, bool) {
	for _, key := range keys {
		if v, ok := r.Int64(key); ok {
			return v, true
		}
	}
	return 0, false
}

func (r Record) FloatAny(keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := r.Float(key); ok {
			return v, true
		}
	}
	return 0, false
}

func (r Record) StringAny(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := r.String(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func (r Record) BoolAny(keys ...string) (bool, bool) {
	for _, key := range keys {
		if v, ok := r.Bool(key); ok {
			return v, true
		}
	}
	return false, false
}

// IntOr and friends collapse the fallback chain to a default, for fields
// the entity contract defaults to zero/empty rather than reporting absence.

func (r Record) IntOr(def int, keys ...string) int {
	if v, ok := r.IntAny(keys...); ok {
		return v
	}
	return def
}

func (r Record) FloatOr(def float64, keys ...string) float64 {
	if v, ok := r.FloatAny(keys...); ok {
		return v
	}
	return def
}

func (r Record) StringOr(def string, keys ...string) string {
	if v, ok := r.StringAny(keys...); ok {
		return v
	}
	return def
}

func (r Record) BoolOr(def bool, keys ...string) bool {
	if v, ok := r.BoolAny(keys...); ok {
		return v
	}
	return def
}
