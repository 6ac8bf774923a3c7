package weights

// ClassifiedSet groups weight values by connection class. Within a class,
// values keep decode order; across classes, the order classes were first
// seen is preserved so downstream consumers iterate deterministically.
type ClassifiedSet struct {
	order  []ConnectionClass
	values map[ConnectionClass][]float64
}

// NewClassifiedSet creates an empty classified set
func NewClassifiedSet() *ClassifiedSet {
	return &ClassifiedSet{values: make(map[ConnectionClass][]float64)}
}

// Add appends a value to a class, registering the class on first use.
func (s *ClassifiedSet) Add(class ConnectionClass, value float64) {
	if _, ok := s.values[class]; !ok {
		s.order = append(s.order, class)
	}
	s.values[class] = append(s.values[class], value)
}

// Classes returns the classes in first-seen order.
func (s *ClassifiedSet) Classes() []ConnectionClass {
	out := make([]ConnectionClass, len(s.order))
	copy(out, s.order)
	return out
}

// Values returns the values recorded for a class, in decode order.
func (s *ClassifiedSet) Values(class ConnectionClass) []float64 {
	return s.values[class]
}

// Total returns the number of values across all classes.
func (s *ClassifiedSet) Total() int {
	n := 0
	for _, vals := range s.values {
		n += len(vals)
	}
	return n
}
